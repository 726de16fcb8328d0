package compose

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/texgen/internal/field"
)

func mk(t *testing.T, w, h int, data []float64) *field.Field {
	t.Helper()
	f, err := field.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	copy(f.Data, data)
	return f
}

func TestBlendWeighted(t *testing.T) {
	a := mk(t, 2, 1, []float64{0, 1})
	b := mk(t, 2, 1, []float64{1, 0})

	out, err := Blend(a, b, Weighted, 0.25, 0)
	if err != nil {
		t.Fatalf("blend failed: %v", err)
	}
	// raw: 0.75, 0.25 -> normalized: 1, 0
	if math.Abs(out.Data[0]-1) > 1e-12 || math.Abs(out.Data[1]) > 1e-12 {
		t.Errorf("got %v", out.Data)
	}
}

func TestBlendMultiply(t *testing.T) {
	a := mk(t, 2, 1, []float64{0.5, 1})
	b := mk(t, 2, 1, []float64{0.5, 1})

	out, err := Blend(a, b, Multiply, 0, 0)
	if err != nil {
		t.Fatalf("blend failed: %v", err)
	}
	min, max := out.MinMax()
	if min != 0 || max != 1 {
		t.Errorf("expected normalized output, got [%f,%f]", min, max)
	}
}

func TestBlendThreshold(t *testing.T) {
	a := mk(t, 4, 1, []float64{0.2, 0.8, 0.5, 0.1})
	b := mk(t, 4, 1, []float64{0.9, 0.3, 0.7, 0.6})

	out, err := Blend(a, b, Threshold, 0, 0.5)
	if err != nil {
		t.Fatalf("blend failed: %v", err)
	}
	// selected raw values: 0.2, 0.3, 0.7, 0.1; normalized over span 0.6
	want := []float64{(0.2 - 0.1) / 0.6, (0.3 - 0.1) / 0.6, 1, 0}
	for i := range want {
		if math.Abs(out.Data[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %f, want %f", i, out.Data[i], want[i])
		}
	}
}

func TestBlendOutputRange(t *testing.T) {
	a := mk(t, 3, 1, []float64{0.1, 0.5, 0.9})
	b := mk(t, 3, 1, []float64{0.9, 0.2, 0.4})

	for _, mode := range []Mode{Weighted, Multiply, Threshold} {
		out, err := Blend(a, b, mode, 0.5, 0.5)
		if err != nil {
			t.Fatalf("mode %s: %v", mode, err)
		}
		min, max := out.MinMax()
		if min < 0 || max > 1 {
			t.Errorf("mode %s: output outside [0,1]: [%f,%f]", mode, min, max)
		}
	}
}

func TestBlendErrors(t *testing.T) {
	a := mk(t, 2, 1, []float64{0, 1})
	b := mk(t, 2, 1, []float64{1, 0})
	c := mk(t, 1, 2, []float64{1, 0})

	tests := []struct {
		name      string
		a, b      *field.Field
		mode      Mode
		weight    float64
		threshold float64
		want      error
	}{
		{"size mismatch", a, c, Weighted, 0.5, 0, field.ErrDimensionMismatch},
		{"weight too low", a, b, Weighted, -0.1, 0, field.ErrParameterBounds},
		{"weight too high", a, b, Weighted, 1.1, 0, field.ErrParameterBounds},
		{"threshold out of range", a, b, Threshold, 0, 2, field.ErrParameterBounds},
		{"unknown mode", a, b, "screen", 0.5, 0, field.ErrParameterBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Blend(tt.a, tt.b, tt.mode, tt.weight, tt.threshold)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
