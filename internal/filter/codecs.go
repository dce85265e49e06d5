package filter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression suffixes.
const (
	SuffixZstd = ".zst"
	SuffixGzip = ".gz"
)

// ErrSizeLimit is returned when decoded output would exceed the limit.
var ErrSizeLimit = errors.New("decoded size exceeds limit")

// ReadLimited reads r to EOF, failing once more than limit bytes arrive.
// At most limit+1 bytes are buffered.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrSizeLimit, limit)
	}
	return data, nil
}

// Zstd decodes Zstandard frames.
type Zstd struct{}

// NewZstd creates a Zstandard filter.
func NewZstd() *Zstd {
	return &Zstd{}
}

func (f *Zstd) Suffix() string {
	return SuffixZstd
}

func (f *Zstd) Decode(input []byte, limit int64) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(input), zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	output, err := ReadLimited(dec, limit)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return output, nil
}

// Gzip decodes gzip streams, including concatenated members.
type Gzip struct{}

// NewGzip creates a gzip filter.
func NewGzip() *Gzip {
	return &Gzip{}
}

func (f *Gzip) Suffix() string {
	return SuffixGzip
}

func (f *Gzip) Decode(input []byte, limit int64) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer r.Close()

	output, err := ReadLimited(r, limit)
	if err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}
	return output, nil
}
