// Package imageio is the typed image codec dispatch layer over the fits
// package.
//
// The pixel width (32- or 64-bit floats) and axis count (1 or 2) of a
// file are only known once its header has been read. FromImage resolves
// that runtime pair to one of four concrete typed drivers and returns it
// behind the Driver interface, so callers operate on the image without
// knowing the pixel type or container shape. WriteImage1D and
// WriteImage2D mirror the path back to disk, recording NaN samples as
// the format's nulls.
package imageio

import "errors"

// Common errors
var (
	ErrNotImage          = errors.New("data unit is not an image")
	ErrUnsupportedFormat = errors.New("unexpected data type")
	ErrUnsupportedDims   = errors.New("unsupported dimensionality")
	ErrDimsTooSmall      = errors.New("image dimensions too small")
	ErrDimsTooLarge      = errors.New("image dimensions too large")
)
