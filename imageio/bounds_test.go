package imageio

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExtent1D(t *testing.T) {
	tests := []struct {
		x       int64
		wantErr error
	}{
		{0, ErrDimsTooSmall},
		{-1, ErrDimsTooSmall},
		{1, nil},
		{math.MaxInt32 - 1, nil},
		{math.MaxInt32, ErrDimsTooLarge},
		{math.MaxInt64, ErrDimsTooLarge},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.x), func(t *testing.T) {
			err := validateExtent1D(tt.x)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExtents2D(t *testing.T) {
	tests := []struct {
		x, y    int64
		wantErr error
	}{
		{0, 5, ErrDimsTooSmall},
		{5, 0, ErrDimsTooSmall},
		{-3, 4, ErrDimsTooSmall},
		{1, 1, nil},
		// Each axis alone passes a naive single-axis check, but the
		// flattened count would overflow a 32-bit signed index.
		{1, math.MaxInt32, ErrDimsTooLarge},
		{math.MaxInt32, 1, ErrDimsTooLarge},
		// Product just over 2^31.
		{46341, 46341, ErrDimsTooLarge},
		{46340, 46340, nil},
		// Extents the format can encode but a product check in 64-bit
		// arithmetic must survive.
		{math.MaxInt64, math.MaxInt64, ErrDimsTooLarge},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.x, tt.y), func(t *testing.T) {
			err := validateExtents2D(tt.x, tt.y)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBoundsDiagnosticNamesExtents(t *testing.T) {
	err := validateExtents2D(1, math.MaxInt32)
	assert.ErrorContains(t, err, "1 x 2147483647")

	err = validateExtent1D(0)
	assert.ErrorContains(t, err, "too small: 0")
}
