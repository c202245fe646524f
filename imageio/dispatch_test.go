package imageio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-fits/fits"
	"github.com/robert-malhotra/go-fits/internal/binary"
	"github.com/robert-malhotra/go-fits/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRawHeader writes a header-only file so tests can present arbitrary
// metadata (table units, odd bitpix codes, oversized extents) without the
// write path's own validation getting in the way.
func writeRawHeader(t *testing.T, path string, cards []card.Card) {
	t.Helper()
	var raw []byte
	for _, c := range cards {
		raw = append(raw, c.Encode()...)
	}
	raw = append(raw, card.End().Encode()...)
	for len(raw)%binary.BlockSize != 0 {
		raw = append(raw, ' ')
	}
	require.NoError(t, os.WriteFile(path, raw, 0o644))
}

// declareImage writes a header-only image file via the fits package.
func declareImage(t *testing.T, path string, bitpix int, naxes []int64) {
	t.Helper()
	f, err := fits.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.CreateImage(bitpix, naxes))
	require.NoError(t, f.Close())
}

func TestDispatchMatrix(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		write      func(path string) error
		wantFormat PixelFormat
		wantDims   Dimensionality
		wantSize   int
	}{
		{
			name: "float32 1D",
			write: func(path string) error {
				img := NewImage1D[float32](4)
				copy(img.Pix, []float32{1, 2, 3, 4})
				return WriteImage1D(path, img)
			},
			wantFormat: Float32,
			wantDims:   OneD,
			wantSize:   4,
		},
		{
			name: "float32 2D",
			write: func(path string) error {
				img := NewImage2D[float32](3, 2)
				copy(img.Pix, []float32{1, 2, 3, 4, 5, 6})
				return WriteImage2D(path, img)
			},
			wantFormat: Float32,
			wantDims:   TwoD,
			wantSize:   6,
		},
		{
			name: "float64 1D",
			write: func(path string) error {
				img := NewImage1D[float64](5)
				copy(img.Pix, []float64{1, 2, 3, 4, 5})
				return WriteImage1D(path, img)
			},
			wantFormat: Float64,
			wantDims:   OneD,
			wantSize:   5,
		},
		{
			name: "float64 2D",
			write: func(path string) error {
				img := NewImage2D[float64](2, 2)
				copy(img.Pix, []float64{1, 2, 3, 4})
				return WriteImage2D(path, img)
			},
			wantFormat: Float64,
			wantDims:   TwoD,
			wantSize:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".fits")
			require.NoError(t, tt.write(path))

			drv, err := FromImage(Settings{Source: path})
			require.NoError(t, err)

			assert.Equal(t, tt.wantFormat, drv.Format())
			assert.Equal(t, tt.wantDims, drv.Dims())
			assert.Equal(t, tt.wantSize, drv.Size())
			assert.Equal(t, path, drv.Source())
			assert.Equal(t, int(tt.wantDims), len(drv.Extents()))

			st := drv.Stats()
			assert.Equal(t, tt.wantSize, st.Samples)
			assert.Equal(t, 0, st.Nulls)
			assert.Equal(t, 1.0, st.Min)
		})
	}
}

func TestFromImageRejectsTables(t *testing.T) {
	tests := []struct {
		xtension string
		wantText string
	}{
		{"TABLE", "ASCII table"},
		{"BINTABLE", "binary table"},
		{"WEIRD", "unknown unit kind"},
	}
	for _, tt := range tests {
		t.Run(tt.xtension, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ext.fits")
			writeRawHeader(t, path, []card.Card{
				card.Str("XTENSION", tt.xtension, ""),
				card.Int("BITPIX", 8, ""),
				card.Int("NAXIS", 0, ""),
			})

			_, err := FromImage(Settings{Source: path})
			assert.ErrorIs(t, err, ErrNotImage)
			assert.ErrorContains(t, err, tt.wantText)
		})
	}
}

func TestFromImageRejectsIntegerBitpix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "int16.fits")
	declareImage(t, path, fits.BitpixInt16, []int64{4})

	_, err := FromImage(Settings{Source: path})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorContains(t, err, "16-bit integers")
}

func TestFromImageRejectsUnknownFloatBitpix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f16.fits")
	writeRawHeader(t, path, []card.Card{
		card.Logical("SIMPLE", true, ""),
		card.Int("BITPIX", -16, ""),
		card.Int("NAXIS", 1, ""),
		card.Int("NAXIS1", 4, ""),
	})

	_, err := FromImage(Settings{Source: path})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorContains(t, err, "16-bit floats")
}

func TestFromImageRejectsAxisCounts(t *testing.T) {
	tests := []struct {
		name     string
		naxes    []int64
		wantText string
	}{
		{"zero axes", nil, "0-dimensional"},
		{"three axes", []int64{2, 2, 2}, "3-dimensional"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "img.fits")
			declareImage(t, path, fits.BitpixFloat32, tt.naxes)

			_, err := FromImage(Settings{Source: path})
			assert.ErrorIs(t, err, ErrUnsupportedDims)
			assert.ErrorContains(t, err, tt.wantText)
		})
	}
}

func TestFromImageRejectsBadExtents(t *testing.T) {
	tests := []struct {
		name    string
		naxes   []int64
		wantErr error
	}{
		{"1D zero extent", []int64{0}, ErrDimsTooSmall},
		{"1D extent at int32 max", []int64{math.MaxInt32}, ErrDimsTooLarge},
		{"2D product overflow", []int64{1, math.MaxInt32}, ErrDimsTooLarge},
		{"2D zero extent", []int64{0, 5}, ErrDimsTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "img.fits")
			declareImage(t, path, fits.BitpixFloat64, tt.naxes)

			_, err := FromImage(Settings{Source: path})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFromImageMissingFile(t *testing.T) {
	_, err := FromImage(Settings{Source: filepath.Join(t.TempDir(), "absent.fits")})
	assert.Error(t, err)
}

func TestSettingsPassThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.fits")
	img := NewImage1D[float32](2)
	require.NoError(t, WriteImage1D(path, img))

	settings := Settings{
		Source:  path,
		Options: map[string]string{"smooth": "3"},
	}
	drv, err := FromImage(settings)
	require.NoError(t, err)

	assert.Equal(t, settings, drv.Settings())
	assert.Equal(t, "3", drv.Settings().Option("smooth", "0"))
	assert.Equal(t, "0", drv.Settings().Option("missing", "0"))
}
