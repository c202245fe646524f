package imageio

import (
	"fmt"
	"math"
	"os"

	"github.com/robert-malhotra/go-fits/fits"
)

// WriteImage1D serializes a 1-D image to a newly created file. Samples
// holding NaN are recorded as nulls. An existing path is an error, never
// overwritten.
func WriteImage1D[T Pixel](path string, img Image1D[T]) error {
	return writeImage[T](path, img.Extents(), img.Pixels())
}

// WriteImage2D serializes a 2-D image to a newly created file.
func WriteImage2D[T Pixel](path string, img Image2D[T]) error {
	return writeImage[T](path, img.Extents(), img.Pixels())
}

// writeImage creates the file, declares the image unit with the matching
// bit-depth code and exact extents, bulk-encodes the buffer with null
// marking, and closes. Any failure after creation removes the partial
// file, so no half-written file is ever left behind.
func writeImage[T Pixel](path string, extents []int, pix []T) error {
	f, err := fits.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	naxes := make([]int64, len(extents))
	for i, e := range extents {
		naxes[i] = int64(e)
	}
	if err := f.CreateImage(pixelFormatOf[T]().Bitpix(), naxes); err != nil {
		return abortWrite(f, path, fmt.Errorf("declaring image unit: %w", err))
	}
	if err := fits.WriteImageNull(f, pix, T(math.NaN())); err != nil {
		return abortWrite(f, path, fmt.Errorf("writing samples: %w", err))
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// abortWrite closes and removes a partly written file, best effort.
func abortWrite(f *fits.File, path string, err error) error {
	f.Close()
	os.Remove(path)
	return err
}
