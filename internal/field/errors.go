package field

import "errors"

// Domain errors for field and pipeline operations.
var (
	// ErrInvalidDimensions indicates a grid with non-positive width or height.
	ErrInvalidDimensions = errors.New("field: invalid grid dimensions")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("field: parameter out of valid bounds")

	// ErrDimensionMismatch indicates two fields with different grid dimensions.
	ErrDimensionMismatch = errors.New("field: grid dimension mismatch")
)
