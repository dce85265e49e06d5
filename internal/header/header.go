package header

import (
	"bytes"
	"errors"
	"fmt"

	binpkg "github.com/robert-malhotra/go-npy/internal/binary"
	"github.com/robert-malhotra/go-npy/internal/dtype"
)

// Magic is the literal stored right after the prefix byte.
var Magic = []byte("NUMPY")

// Fixed preamble layout.
const (
	Prefix        byte = 0x93
	MagicOffset        = 1
	DictOffset         = 10
	DictLen            = 118
	PayloadOffset      = DictOffset + DictLen
)

// Errors
var (
	ErrMalformed     = errors.New("malformed header dictionary")
	ErrHeaderTooLong = errors.New("header dictionary does not fit the fixed window")
)

// Metadata is the element type and two-dimensional shape declared by the
// header dictionary.
type Metadata struct {
	NumType dtype.NumType
	Rows    int
	Cols    int
}

// NumElements returns Rows*Cols.
func (m Metadata) NumElements() int {
	return m.Rows * m.Cols
}

func (m Metadata) String() string {
	return fmt.Sprintf("%s %dx%d", m.NumType, m.Rows, m.Cols)
}

// CheckMagic reads the five magic bytes at MagicOffset and reports whether
// they spell "NUMPY". A source too short to hold them is not an NPY file.
func CheckMagic(r *binpkg.Reader) bool {
	buf, err := r.ReadAt(MagicOffset, len(Magic))
	if err != nil {
		return false
	}
	return bytes.Equal(buf, Magic)
}

// ReadMetadata reads the dictionary window and parses it.
func ReadMetadata(r *binpkg.Reader) (Metadata, error) {
	buf, err := r.ReadAt(DictOffset, DictLen)
	if err != nil {
		return Metadata{}, fmt.Errorf("reading header dictionary: %w", err)
	}
	return Parse(buf)
}
