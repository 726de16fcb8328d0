package noise

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/texgen/internal/field"
)

// Perlin generates gradient-interpolated lattice noise. Scale is the
// number of lattice cells across the longer grid span; Octaves stacks
// successive frequency doublings weighted by Persistence (fBm).
type Perlin struct {
	Scale       float64
	Octaves     int
	Persistence float64
}

// NewPerlin returns a single-octave source at the given scale.
func NewPerlin(scale float64) *Perlin {
	return &Perlin{Scale: scale, Octaves: 1, Persistence: 0.5}
}

func (p *Perlin) Name() string { return "perlin" }

func (p *Perlin) validate() error {
	if p.Scale <= 0 {
		return fmt.Errorf("%w: perlin scale %g (must be > 0)", field.ErrParameterBounds, p.Scale)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("%w: perlin octaves %d (must be >= 1)", field.ErrParameterBounds, p.Octaves)
	}
	if p.Persistence <= 0 || p.Persistence > 1 {
		return fmt.Errorf("%w: perlin persistence %g (must be in (0,1])", field.ErrParameterBounds, p.Persistence)
	}
	return nil
}

// Generate builds the field. The permutation table is a seeded shuffle of
// 0..255 duplicated to 512 entries, so lattice lookups wrap modulo 256.
func (p *Perlin) Generate(w, h int, rng *rand.Rand) (*field.Field, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	f, err := field.New(w, h)
	if err != nil {
		return nil, err
	}

	var perm [512]int
	for i, v := range rng.Perm(256) {
		perm[i] = v
		perm[i+256] = v
	}

	span := w
	if h > span {
		span = h
	}
	// lattice units per pixel
	step := p.Scale / float64(span)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := float64(x)*step, float64(y)*step
			sum, amp, freq := 0.0, 1.0, 1.0
			for o := 0; o < p.Octaves; o++ {
				sum += amp * sample(&perm, px*freq, py*freq)
				amp *= p.Persistence
				freq *= 2
			}
			f.Set(x, y, sum)
		}
	}

	f.Normalize()
	return f, nil
}

// sample evaluates raw lattice noise at (x,y); output is in roughly
// [-sqrt2/2, sqrt2/2] before normalization.
func sample(perm *[512]int, x, y float64) float64 {
	xi, yi := int(x)&255, int(y)&255
	xf, yf := x-float64(int(x)), y-float64(int(y))
	u, v := fade(xf), fade(yf)

	n00 := grad(perm[perm[xi]+yi], xf, yf)
	n10 := grad(perm[perm[xi+1]+yi], xf-1, yf)
	n01 := grad(perm[perm[xi]+yi+1], xf, yf-1)
	n11 := grad(perm[perm[xi+1]+yi+1], xf-1, yf-1)

	return lerp(lerp(n00, n10, u), lerp(n01, n11, u), v)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3, zero first and second
// derivative at the lattice points.
func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

// grad projects (x,y) onto one of four diagonal gradient directions
// picked by the hash.
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}
