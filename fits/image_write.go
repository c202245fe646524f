package fits

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteImageNull bulk-encodes the full sample buffer of the declared image
// unit. Any sample equal to nulval is recorded as NaN, the format's native
// null for floating-point images, so missing samples survive a round trip
// identically. The buffer length must match the declared extents exactly.
func WriteImageNull[T Sample](f *File, data []T, nulval T) error {
	if f.closed {
		return ErrClosed
	}
	if !f.writable {
		return ErrNotWritable
	}
	if f.dataStart == 0 {
		return ErrNoImage
	}

	bitpix, err := f.Bitpix()
	if err != nil {
		return err
	}
	if bitpix != BitpixFloat32 && bitpix != BitpixFloat64 {
		return fmt.Errorf("%w: encoding samples to bitpix %d is not supported", ErrBadBitpix, bitpix)
	}

	n, err := f.numSamples()
	if err != nil {
		return err
	}
	if int64(len(data)) != n {
		return fmt.Errorf("%w: have %d samples, header declares %d", ErrDataSize, len(data), n)
	}

	isNull := nullMatcher(nulval)
	size := bitpixSize(bitpix)
	raw := make([]byte, len(data)*size)
	for i, v := range data {
		fv := float64(v)
		if isNull(v) {
			fv = math.NaN()
		}
		if bitpix == BitpixFloat32 {
			binary.BigEndian.PutUint32(raw[i*4:], math.Float32bits(float32(fv)))
		} else {
			binary.BigEndian.PutUint64(raw[i*8:], math.Float64bits(fv))
		}
	}

	if err := f.writer.WriteBytes(raw); err != nil {
		return fmt.Errorf("writing %d samples: %w", len(data), err)
	}
	return nil
}

// nullMatcher returns the sentinel comparison for a null value. NaN never
// compares equal to itself, so a NaN sentinel matches by IsNaN instead.
func nullMatcher[T Sample](nulval T) func(T) bool {
	if math.IsNaN(float64(nulval)) {
		return func(v T) bool { return math.IsNaN(float64(v)) }
	}
	return func(v T) bool { return v == nulval }
}
