package binary

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer provides positioned big-endian writes over a FITS file.
type Writer struct {
	w   io.WriterAt
	pos int64
}

// NewWriter creates a writer positioned at the start of the file.
func NewWriter(w io.WriterAt) *Writer {
	return &Writer{w: w}
}

// At returns a new writer positioned at the given offset. The new writer
// shares the underlying io.WriterAt but has independent position.
func (w *Writer) At(offset int64) *Writer {
	return &Writer{w: w.w, pos: offset}
}

// Pos returns the current write position.
func (w *Writer) Pos() int64 {
	return w.pos
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.pos)
	w.pos += int64(n)
	return err
}

// WriteCard writes one 80-byte header card. Short input is space-padded,
// long input is truncated.
func (w *Writer) WriteCard(card []byte) error {
	buf := make([]byte, CardSize)
	for i := range buf {
		buf[i] = ' '
	}
	copy(buf, card)
	return w.WriteBytes(buf)
}

// WriteFloat32 writes a big-endian IEEE-754 single-precision value.
func (w *Writer) WriteFloat32(v float32) error {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, math.Float32bits(v))
	return w.WriteBytes(buf)
}

// WriteFloat64 writes a big-endian IEEE-754 double-precision value.
func (w *Writer) WriteFloat64(v float64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(v))
	return w.WriteBytes(buf)
}

// PadBlock fills the remainder of the current 2880-byte block with the
// given fill byte. Headers are padded with ASCII spaces, data with zeros.
func (w *Writer) PadBlock(fill byte) error {
	rem := w.pos % BlockSize
	if rem == 0 {
		return nil
	}
	pad := make([]byte, BlockSize-rem)
	if fill != 0 {
		for i := range pad {
			pad[i] = fill
		}
	}
	return w.WriteBytes(pad)
}
