// Package fits provides a pure Go implementation for reading and writing
// FITS image files.
package fits

import "errors"

// Common errors
var (
	ErrNotFITS     = errors.New("not a FITS file")
	ErrClosed      = errors.New("file is closed")
	ErrNotImage    = errors.New("data unit is not an image")
	ErrNotWritable = errors.New("file is not writable")
	ErrNoImage     = errors.New("no image unit declared")
	ErrBadBitpix   = errors.New("invalid bitpix code")
	ErrDataSize    = errors.New("data length does not match declared extents")
)
