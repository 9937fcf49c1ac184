package sketch

import "errors"

var (
	// ErrInvalidDimensions is returned when a surface is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("sketch: invalid dimensions")

	// ErrSurfaceTooLarge is returned when a surface would exceed
	// MaxSurfacePixels.
	ErrSurfaceTooLarge = errors.New("sketch: surface too large")
)
