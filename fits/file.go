package fits

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-fits/internal/binary"
	"github.com/robert-malhotra/go-fits/internal/card"
)

// maxHeaderBlocks bounds header parsing so a corrupt file without an END
// card cannot make Open read forever.
const maxHeaderBlocks = 1000

// File represents an open FITS file positioned at its first data unit.
type File struct {
	path      string
	file      *os.File
	reader    *binary.Reader
	writer    *binary.Writer
	header    *card.Header
	kind      HDUType
	dataStart int64
	writable  bool
	closed    bool
}

// Open opens a FITS file for reading and parses the header of the first
// data unit.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	reader := binary.NewReader(f)
	header, err := readHeader(reader)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading header: %w", err)
	}

	kind, err := classifyHDU(header)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{
		path:      path,
		file:      f,
		reader:    reader,
		header:    header,
		kind:      kind,
		dataStart: reader.Pos(),
	}, nil
}

// readHeader parses cards up to and including END, then advances to the
// data block boundary.
func readHeader(r *binary.Reader) (*card.Header, error) {
	header := &card.Header{}
	for i := 0; i < maxHeaderBlocks*binary.CardsPerBlock; i++ {
		raw, err := r.ReadCard()
		if err != nil {
			return nil, fmt.Errorf("reading card %d: %w", i, err)
		}
		c, err := card.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing card %d: %w", i, err)
		}
		if i == 0 && c.Keyword != "SIMPLE" && c.Keyword != "XTENSION" {
			return nil, ErrNotFITS
		}
		if c.IsEnd() {
			r.AlignBlock()
			return header, nil
		}
		header.Append(c)
	}
	return nil, fmt.Errorf("no END card within %d blocks", maxHeaderBlocks)
}

// classifyHDU determines the data unit kind from the header. A primary
// header (SIMPLE) is always an image; extensions declare their kind in
// XTENSION.
func classifyHDU(h *card.Header) (HDUType, error) {
	if h.Has("SIMPLE") {
		return ImageHDU, nil
	}
	xt, err := h.Text("XTENSION")
	if err != nil {
		return UnknownHDU, fmt.Errorf("classifying data unit: %w", err)
	}
	switch xt {
	case "IMAGE":
		return ImageHDU, nil
	case "TABLE":
		return ASCIITableHDU, nil
	case "BINTABLE":
		return BinaryTableHDU, nil
	default:
		return UnknownHDU, nil
	}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// HDUType returns the kind of the first data unit.
func (f *File) HDUType() HDUType {
	return f.kind
}

// Bitpix returns the declared bit-depth/encoding code of the image unit.
func (f *File) Bitpix() (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	if f.header == nil {
		return 0, ErrNoImage
	}
	if f.kind != ImageHDU {
		return 0, ErrNotImage
	}
	v, err := f.header.IntValue("BITPIX")
	if err != nil {
		return 0, fmt.Errorf("reading BITPIX: %w", err)
	}
	return int(v), nil
}

// NumAxes returns the declared axis count of the image unit.
func (f *File) NumAxes() (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	if f.header == nil {
		return 0, ErrNoImage
	}
	if f.kind != ImageHDU {
		return 0, ErrNotImage
	}
	v, err := f.header.IntValue("NAXIS")
	if err != nil {
		return 0, fmt.Errorf("reading NAXIS: %w", err)
	}
	return int(v), nil
}

// AxisSizes returns the declared extents of the image unit, fastest-varying
// axis first (NAXIS1, NAXIS2, ...).
func (f *File) AxisSizes() ([]int64, error) {
	naxis, err := f.NumAxes()
	if err != nil {
		return nil, err
	}
	sizes := make([]int64, naxis)
	for i := range sizes {
		kw := fmt.Sprintf("NAXIS%d", i+1)
		v, err := f.header.IntValue(kw)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", kw, err)
		}
		sizes[i] = v
	}
	return sizes, nil
}

// Close closes the file. For writable files the data block is padded to
// the 2880-byte boundary and flushed first. Close is idempotent.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if f.writable {
		if err := f.finalize(); err != nil {
			f.file.Close()
			return err
		}
	}
	return f.file.Close()
}

// finalize pads and syncs a writable file.
func (f *File) finalize() error {
	if f.dataStart > 0 {
		if err := f.writer.PadBlock(0); err != nil {
			return fmt.Errorf("padding data block: %w", err)
		}
	}
	if err := f.file.Sync(); err != nil {
		return fmt.Errorf("syncing file: %w", err)
	}
	return nil
}

// numSamples returns the total declared sample count of the image unit.
func (f *File) numSamples() (int64, error) {
	sizes, err := f.AxisSizes()
	if err != nil {
		return 0, err
	}
	n := int64(1)
	for _, s := range sizes {
		n *= s
	}
	if len(sizes) == 0 {
		n = 0
	}
	return n, nil
}
