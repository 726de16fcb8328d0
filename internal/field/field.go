package field

import "fmt"

// Field is a W×H grid of scalar samples stored row-major.
type Field struct {
	W, H int
	Data []float64
}

// New allocates a zeroed field. Width and height must be positive.
func New(w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Field{W: w, H: h, Data: make([]float64, w*h)}, nil
}

func (f *Field) At(x, y int) float64     { return f.Data[y*f.W+x] }
func (f *Field) Set(x, y int, v float64) { f.Data[y*f.W+x] = v }

// Len returns the number of samples (W*H).
func (f *Field) Len() int { return len(f.Data) }

// SameSize reports whether g has identical grid dimensions.
func (f *Field) SameSize(g *Field) bool { return f.W == g.W && f.H == g.H }

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{W: f.W, H: f.H, Data: make([]float64, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

// MinMax returns the smallest and largest sample values.
func (f *Field) MinMax() (min, max float64) {
	min, max = f.Data[0], f.Data[0]
	for _, v := range f.Data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Normalize rescales all samples to [0,1] in place. A constant field
// collapses to all zeros.
func (f *Field) Normalize() {
	min, max := f.MinMax()
	span := max - min
	if span == 0 {
		for i := range f.Data {
			f.Data[i] = 0
		}
		return
	}
	for i := range f.Data {
		f.Data[i] = (f.Data[i] - min) / span
	}
}

// Mean returns the average sample value.
func (f *Field) Mean() float64 {
	sum := 0.0
	for _, v := range f.Data {
		sum += v
	}
	return sum / float64(len(f.Data))
}

// Histogram buckets samples assumed to lie in [0,1] into bins counts.
// Out-of-range samples clamp to the first or last bin.
func (f *Field) Histogram(bins int) []float64 {
	if bins <= 0 {
		bins = 1
	}
	h := make([]float64, bins)
	for _, v := range f.Data {
		i := int(v * float64(bins))
		if i < 0 {
			i = 0
		}
		if i >= bins {
			i = bins - 1
		}
		h[i]++
	}
	return h
}
