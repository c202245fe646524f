package imageio

import (
	"fmt"
	"math"
)

// maxExtent is the exclusive upper bound on extents and on the flattened
// sample count. Downstream indexing and the format library use 32-bit
// signed counts; values at or above this would silently wrap.
const maxExtent = math.MaxInt32

// validateExtent1D checks a single declared extent.
func validateExtent1D(x int64) error {
	if x < 1 {
		return fmt.Errorf("%w: %d", ErrDimsTooSmall, x)
	}
	if x >= maxExtent {
		return fmt.Errorf("%w: %d", ErrDimsTooLarge, x)
	}
	return nil
}

// validateExtents2D checks a pair of declared extents and their product.
// Each axis is checked against the ceiling before the product is taken,
// so the 64-bit multiplication cannot itself overflow.
func validateExtents2D(x, y int64) error {
	if x < 1 || y < 1 {
		return fmt.Errorf("%w: %d x %d", ErrDimsTooSmall, x, y)
	}
	if x >= maxExtent || y >= maxExtent || x*y >= maxExtent {
		return fmt.Errorf("%w: %d x %d", ErrDimsTooLarge, x, y)
	}
	return nil
}
