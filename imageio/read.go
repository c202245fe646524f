package imageio

import (
	"fmt"
	"math"

	"github.com/robert-malhotra/go-fits/fits"
)

// openImage opens the named file for reading and asserts that its first
// data unit is an image. The returned file is still open; the consuming
// reader closes it immediately after the bulk decode.
func openImage(path string) (*fits.File, error) {
	f, err := fits.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if kind := f.HDUType(); kind != fits.ImageHDU {
		f.Close()
		return nil, fmt.Errorf("%w: expected an image unit, got %s", ErrNotImage, kind)
	}
	return f, nil
}

// combo is one cell of the (pixel format, dimensionality) matrix.
type combo struct {
	format PixelFormat
	dims   Dimensionality
}

// constructors is the closed dispatch table resolving the runtime
// (format, dimensionality) pair read from file metadata to a concrete
// typed driver. Supporting a new pixel format or axis count means adding
// entries here and the matching reader instantiation, nothing else.
var constructors = map[combo]func(Settings, *fits.File) (Driver, error){
	{Float32, OneD}: newDriver1D[float32],
	{Float32, TwoD}: newDriver2D[float32],
	{Float64, OneD}: newDriver1D[float64],
	{Float64, TwoD}: newDriver2D[float64],
}

// FromImage opens the settings' source file, resolves its pixel format
// and dimensionality, and returns the matching typed driver behind the
// Driver interface. The file is closed before FromImage returns; the
// driver owns all image data in memory.
func FromImage(settings Settings) (Driver, error) {
	f, err := openImage(settings.Source)
	if err != nil {
		return nil, err
	}

	bitpix, err := f.Bitpix()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("querying image type: %w", err)
	}
	format, err := FormatOf(bitpix)
	if err != nil {
		f.Close()
		return nil, err
	}

	naxis, err := f.NumAxes()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("querying image dimensionality: %w", err)
	}
	dims, err := DimensionalityOf(naxis)
	if err != nil {
		f.Close()
		return nil, err
	}

	build, ok := constructors[combo{format, dims}]
	if !ok {
		f.Close()
		return nil, fmt.Errorf("no driver for %s %s data", format, dims)
	}
	return build(settings, f)
}

// newDriver1D reads a 1-D image and wraps it in a typed driver.
func newDriver1D[T Pixel](settings Settings, f *fits.File) (Driver, error) {
	img, err := readImage1D[T](f)
	if err != nil {
		return nil, err
	}
	return NewTypedDriver[T](settings, img), nil
}

// newDriver2D reads a 2-D image and wraps it in a typed driver.
func newDriver2D[T Pixel](settings Settings, f *fits.File) (Driver, error) {
	img, err := readImage2D[T](f)
	if err != nil {
		return nil, err
	}
	return NewTypedDriver[T](settings, img), nil
}

// readImage1D decodes a 1-D image: query the declared extent, validate
// it, allocate the container, bulk-decode with null substitution, close
// the file. No partial container is ever returned.
func readImage1D[T Pixel](f *fits.File) (Image1D[T], error) {
	var zero Image1D[T]

	sizes, err := f.AxisSizes()
	if err != nil {
		f.Close()
		return zero, fmt.Errorf("querying axis extents: %w", err)
	}
	if err := validateExtent1D(sizes[0]); err != nil {
		f.Close()
		return zero, err
	}

	img := NewImage1D[T](int(sizes[0]))
	if _, err := fits.ReadImage(f, img.Pix, T(math.NaN())); err != nil {
		f.Close()
		return zero, fmt.Errorf("reading samples: %w", err)
	}
	if err := f.Close(); err != nil {
		return zero, fmt.Errorf("closing file: %w", err)
	}
	return img, nil
}

// readImage2D mirrors readImage1D on two axes.
func readImage2D[T Pixel](f *fits.File) (Image2D[T], error) {
	var zero Image2D[T]

	sizes, err := f.AxisSizes()
	if err != nil {
		f.Close()
		return zero, fmt.Errorf("querying axis extents: %w", err)
	}
	if err := validateExtents2D(sizes[0], sizes[1]); err != nil {
		f.Close()
		return zero, err
	}

	img := NewImage2D[T](int(sizes[0]), int(sizes[1]))
	if _, err := fits.ReadImage(f, img.Pix, T(math.NaN())); err != nil {
		f.Close()
		return zero, fmt.Errorf("reading samples: %w", err)
	}
	if err := f.Close(); err != nil {
		return zero, fmt.Errorf("closing file: %w", err)
	}
	return img, nil
}
