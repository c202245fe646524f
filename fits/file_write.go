package fits

import (
	"fmt"
	"os"

	binpkg "github.com/robert-malhotra/go-fits/internal/binary"
	"github.com/robert-malhotra/go-fits/internal/card"
)

// Create creates a new FITS file at the given path. An existing file is
// never overwritten; creation fails instead.
func Create(path string) (*File, error) {
	osFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	return &File{
		path:     path,
		file:     osFile,
		writer:   binpkg.NewWriter(osFile),
		writable: true,
	}, nil
}

// CreateImage declares the primary image unit with the given bitpix code
// and axis extents (fastest-varying axis first) and writes the header.
// Sample data is written afterwards with WriteImageNull.
func (f *File) CreateImage(bitpix int, naxes []int64) error {
	if f.closed {
		return ErrClosed
	}
	if !f.writable {
		return ErrNotWritable
	}
	if f.dataStart > 0 {
		return fmt.Errorf("image unit already declared")
	}
	if !validBitpix(bitpix) {
		return fmt.Errorf("%w: %d", ErrBadBitpix, bitpix)
	}

	header := &card.Header{}
	header.Append(card.Logical("SIMPLE", true, "conforms to FITS standard"))
	header.Append(card.Int("BITPIX", int64(bitpix), "bits per data value"))
	header.Append(card.Int("NAXIS", int64(len(naxes)), "number of data axes"))
	for i, n := range naxes {
		header.Append(card.Int(fmt.Sprintf("NAXIS%d", i+1), n, fmt.Sprintf("length of data axis %d", i+1)))
	}

	for _, c := range header.Cards() {
		if err := f.writer.WriteCard(c.Encode()); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := f.writer.WriteCard(card.End().Encode()); err != nil {
		return fmt.Errorf("writing END card: %w", err)
	}
	if err := f.writer.PadBlock(' '); err != nil {
		return fmt.Errorf("padding header block: %w", err)
	}

	f.header = header
	f.kind = ImageHDU
	f.dataStart = f.writer.Pos()
	return nil
}
