package fits

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Sample constrains the in-memory pixel types this library decodes to.
type Sample interface {
	~float32 | ~float64
}

// ReadImage bulk-decodes the image unit's full sample buffer into dest,
// converting from the on-disk width when it differs from T. Samples the
// file marks as missing (on-disk NaN) are replaced with nulval; the
// number of replaced samples is returned. dest must match the declared
// extents exactly.
func ReadImage[T Sample](f *File, dest []T, nulval T) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	if f.kind != ImageHDU {
		return 0, ErrNotImage
	}

	bitpix, err := f.Bitpix()
	if err != nil {
		return 0, err
	}
	if bitpix != BitpixFloat32 && bitpix != BitpixFloat64 {
		return 0, fmt.Errorf("%w: decoding bitpix %d is not supported", ErrBadBitpix, bitpix)
	}

	n, err := f.numSamples()
	if err != nil {
		return 0, err
	}
	if int64(len(dest)) != n {
		return 0, fmt.Errorf("%w: buffer holds %d samples, header declares %d", ErrDataSize, len(dest), n)
	}

	raw, err := f.reader.At(f.dataStart).ReadBytes(len(dest) * bitpixSize(bitpix))
	if err != nil {
		return 0, fmt.Errorf("reading %d samples: %w", n, err)
	}

	replaced := 0
	for i := range dest {
		var v float64
		if bitpix == BitpixFloat32 {
			v = float64(math.Float32frombits(binary.BigEndian.Uint32(raw[i*4:])))
		} else {
			v = math.Float64frombits(binary.BigEndian.Uint64(raw[i*8:]))
		}
		if math.IsNaN(v) {
			dest[i] = nulval
			replaced++
		} else {
			dest[i] = T(v)
		}
	}
	return replaced, nil
}
