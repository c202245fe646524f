package fits

import "fmt"

// HDUType identifies the kind of a data unit.
type HDUType int

const (
	// ImageHDU is a data unit holding an N-dimensional sample array.
	ImageHDU HDUType = iota
	// ASCIITableHDU is an ASCII table extension.
	ASCIITableHDU
	// BinaryTableHDU is a binary table extension.
	BinaryTableHDU
	// UnknownHDU is an extension this library does not recognize.
	UnknownHDU
)

func (t HDUType) String() string {
	switch t {
	case ImageHDU:
		return "image"
	case ASCIITableHDU:
		return "ASCII table"
	case BinaryTableHDU:
		return "binary table"
	default:
		return fmt.Sprintf("unknown unit kind %d", int(t))
	}
}

// Bitpix codes, as declared by the BITPIX keyword. Negative codes are
// floating-point widths, non-negative codes are integer widths.
const (
	BitpixUint8   = 8
	BitpixInt16   = 16
	BitpixInt32   = 32
	BitpixInt64   = 64
	BitpixFloat32 = -32
	BitpixFloat64 = -64
)

// validBitpix reports whether code is one of the bitpix values the format
// defines. Writing integer images is allowed; decoding them is not.
func validBitpix(code int) bool {
	switch code {
	case BitpixUint8, BitpixInt16, BitpixInt32, BitpixInt64,
		BitpixFloat32, BitpixFloat64:
		return true
	}
	return false
}

// bitpixSize returns the sample size in bytes for a bitpix code.
func bitpixSize(code int) int {
	if code < 0 {
		return -code / 8
	}
	return code / 8
}
