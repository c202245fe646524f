package imageio

import (
	"testing"

	"github.com/robert-malhotra/go-fits/fits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	f, err := FormatOf(fits.BitpixFloat32)
	require.NoError(t, err)
	assert.Equal(t, Float32, f)

	f, err = FormatOf(fits.BitpixFloat64)
	require.NoError(t, err)
	assert.Equal(t, Float64, f)
}

func TestFormatOfRejectsIntegers(t *testing.T) {
	for _, bitpix := range []int{8, 16, 32, 64} {
		_, err := FormatOf(bitpix)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.ErrorContains(t, err, "integers")
	}

	_, err := FormatOf(16)
	assert.ErrorContains(t, err, "16-bit integers")
}

func TestFormatOfRejectsUnknownFloats(t *testing.T) {
	_, err := FormatOf(-16)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorContains(t, err, "16-bit floats")
}

func TestFormatTraits(t *testing.T) {
	assert.Equal(t, fits.BitpixFloat32, Float32.Bitpix())
	assert.Equal(t, fits.BitpixFloat64, Float64.Bitpix())
	assert.Equal(t, "32-bit floats", Float32.String())
	assert.Equal(t, "64-bit floats", Float64.String())
}

func TestPixelFormatOf(t *testing.T) {
	assert.Equal(t, Float32, pixelFormatOf[float32]())
	assert.Equal(t, Float64, pixelFormatOf[float64]())
}

func TestDimensionalityOf(t *testing.T) {
	d, err := DimensionalityOf(1)
	require.NoError(t, err)
	assert.Equal(t, OneD, d)

	d, err = DimensionalityOf(2)
	require.NoError(t, err)
	assert.Equal(t, TwoD, d)

	for _, naxis := range []int{0, 3, 7} {
		_, err := DimensionalityOf(naxis)
		assert.ErrorIs(t, err, ErrUnsupportedDims)
	}

	_, err = DimensionalityOf(3)
	assert.ErrorContains(t, err, "got 3-dimensional data")
}
