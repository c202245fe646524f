package imageio

import (
	"fmt"
	"reflect"

	"github.com/robert-malhotra/go-fits/fits"
)

// Pixel constrains the supported in-memory pixel types.
type Pixel interface {
	~float32 | ~float64
}

// PixelFormat identifies one of the supported on-disk pixel encodings.
// The set is closed; adding a format means adding a variant here, its
// trait entry below, and a row in the dispatch table.
type PixelFormat int

const (
	// Float32 is the 32-bit floating-point encoding (bitpix -32).
	Float32 PixelFormat = iota
	// Float64 is the 64-bit floating-point encoding (bitpix -64).
	Float64
)

// formatTraits maps each format to its bit-depth code and human label.
var formatTraits = map[PixelFormat]struct {
	bitpix int
	label  string
}{
	Float32: {fits.BitpixFloat32, "32-bit floats"},
	Float64: {fits.BitpixFloat64, "64-bit floats"},
}

// Bitpix returns the format's bit-depth/encoding code.
func (f PixelFormat) Bitpix() int {
	return formatTraits[f].bitpix
}

func (f PixelFormat) String() string {
	if t, ok := formatTraits[f]; ok {
		return t.label
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// FormatOf maps a bit-depth code to its PixelFormat. Codes outside the
// two floating-point encodings are an input error; the diagnostic
// distinguishes floats (negative codes) from integers (non-negative).
func FormatOf(bitpix int) (PixelFormat, error) {
	switch bitpix {
	case fits.BitpixFloat32:
		return Float32, nil
	case fits.BitpixFloat64:
		return Float64, nil
	}
	if bitpix < 0 {
		return 0, fmt.Errorf("%w: %d-bit floats", ErrUnsupportedFormat, -bitpix)
	}
	return 0, fmt.Errorf("%w: %d-bit integers", ErrUnsupportedFormat, bitpix)
}

// pixelFormatOf returns the format matching the in-memory pixel type T.
func pixelFormatOf[T Pixel]() PixelFormat {
	var z T
	if reflect.TypeOf(z).Kind() == reflect.Float32 {
		return Float32
	}
	return Float64
}

// Dimensionality is the axis count of an image. The set is closed;
// metadata values outside {1,2} are an input error, not a third variant.
type Dimensionality int

const (
	// OneD is a single-axis image.
	OneD Dimensionality = 1
	// TwoD is a two-axis image.
	TwoD Dimensionality = 2
)

func (d Dimensionality) String() string {
	return fmt.Sprintf("%d-dimensional", int(d))
}

// DimensionalityOf maps a declared axis count to its Dimensionality.
func DimensionalityOf(naxis int) (Dimensionality, error) {
	switch naxis {
	case 1:
		return OneD, nil
	case 2:
		return TwoD, nil
	}
	return 0, fmt.Errorf("%w: expected 1-dimensional or 2-dimensional data, got %d-dimensional data",
		ErrUnsupportedDims, naxis)
}
