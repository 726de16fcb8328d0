// Package compose blends two scalar fields into one.
//
// Three blend modes are supported:
//
//   - [Weighted]: w*a + (1-w)*b
//   - [Multiply]: a*b
//   - [Threshold]: b where a >= threshold, a elsewhere
//
// The result is min-max normalized to [0,1] before it reaches the color
// mapper.
package compose

import (
	"fmt"

	"github.com/san-kum/texgen/internal/field"
)

// Mode selects the blend function.
type Mode string

const (
	Weighted  Mode = "weighted"
	Multiply  Mode = "multiply"
	Threshold Mode = "threshold"
)

// Blend combines a and b. For Weighted mode weight must be in [0,1];
// for Threshold mode threshold must be in [0,1]. Both fields must share
// grid dimensions.
func Blend(a, b *field.Field, mode Mode, weight, threshold float64) (*field.Field, error) {
	if !a.SameSize(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", field.ErrDimensionMismatch, a.W, a.H, b.W, b.H)
	}

	out, err := field.New(a.W, a.H)
	if err != nil {
		return nil, err
	}

	switch mode {
	case Weighted:
		if weight < 0 || weight > 1 {
			return nil, fmt.Errorf("%w: blend weight %g (must be in [0,1])", field.ErrParameterBounds, weight)
		}
		for i := range out.Data {
			out.Data[i] = weight*a.Data[i] + (1-weight)*b.Data[i]
		}
	case Multiply:
		for i := range out.Data {
			out.Data[i] = a.Data[i] * b.Data[i]
		}
	case Threshold:
		if threshold < 0 || threshold > 1 {
			return nil, fmt.Errorf("%w: blend threshold %g (must be in [0,1])", field.ErrParameterBounds, threshold)
		}
		for i := range out.Data {
			if a.Data[i] >= threshold {
				out.Data[i] = b.Data[i]
			} else {
				out.Data[i] = a.Data[i]
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown blend mode %q", field.ErrParameterBounds, mode)
	}

	out.Normalize()
	return out, nil
}
