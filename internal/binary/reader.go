// Package binary provides low-level binary I/O operations for FITS file
// parsing and writing.
//
// FITS files are a sequence of 2880-byte logical blocks. Headers are made
// of 80-byte ASCII cards, data blocks hold big-endian IEEE-754 samples.
package binary

import (
	"encoding/binary"
	"io"
	"math"
)

const (
	// BlockSize is the FITS logical block size in bytes.
	BlockSize = 2880
	// CardSize is the size of one header card in bytes.
	CardSize = 80
	// CardsPerBlock is the number of header cards per logical block.
	CardsPerBlock = BlockSize / CardSize
)

// Reader provides positioned reads over a FITS file. All multi-byte values
// are big-endian, as required by the format.
type Reader struct {
	r   io.ReaderAt
	pos int64
}

// NewReader creates a reader positioned at the start of the file.
func NewReader(r io.ReaderAt) *Reader {
	return &Reader{r: r}
}

// At returns a new reader positioned at the given offset. The new reader
// shares the underlying io.ReaderAt but has independent position.
func (r *Reader) At(offset int64) *Reader {
	return &Reader{r: r.r, pos: offset}
}

// Pos returns the current read position.
func (r *Reader) Pos() int64 {
	return r.pos
}

// ReadBytes reads exactly n bytes from the current position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := r.r.ReadAt(buf, r.pos); err != nil {
		return nil, err
	}
	r.pos += int64(n)
	return buf, nil
}

// ReadCard reads one 80-byte header card.
func (r *Reader) ReadCard() ([]byte, error) {
	return r.ReadBytes(CardSize)
}

// ReadFloat32 reads a big-endian IEEE-754 single-precision value.
func (r *Reader) ReadFloat32() (float32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf)), nil
}

// ReadFloat64 reads a big-endian IEEE-754 double-precision value.
func (r *Reader) ReadFloat64() (float64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf)), nil
}

// AlignBlock advances the position to the next 2880-byte block boundary.
// If already aligned, the position is unchanged.
func (r *Reader) AlignBlock() {
	if rem := r.pos % BlockSize; rem != 0 {
		r.pos += BlockSize - rem
	}
}
