package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/robert-malhotra/go-npy/internal/binary"
	"github.com/robert-malhotra/go-npy/internal/dtype"
	"github.com/robert-malhotra/go-npy/internal/header"
)

// Errors
var (
	ErrExtent = errors.New("payload extent overflows")
	ErrRow    = errors.New("row index out of range")
)

// Span is a contiguous byte range of the payload.
type Span struct {
	Offset int64
	Count  int // elements
}

// Size returns the span length in bytes.
func (s Span) Size() int {
	return s.Count * dtype.ElementSize
}

// Full returns the span covering all Rows*Cols elements.
func Full(meta header.Metadata) (Span, error) {
	n, err := elements(meta.Rows, meta.Cols)
	if err != nil {
		return Span{}, err
	}
	return Span{Offset: header.PayloadOffset, Count: n}, nil
}

// Row returns the span of row k. k is validated against Rows before the
// offset is computed, so an out-of-range row never produces a read.
func Row(meta header.Metadata, k int) (Span, error) {
	if k < 0 || k >= meta.Rows {
		return Span{}, fmt.Errorf("%w: row %d, have %d rows", ErrRow, k, meta.Rows)
	}
	if _, err := elements(meta.Rows, meta.Cols); err != nil {
		return Span{}, err
	}
	offset := int64(header.PayloadOffset) + int64(k)*int64(meta.Cols)*dtype.ElementSize
	return Span{Offset: offset, Count: meta.Cols}, nil
}

// Read reads the bytes of s. The returned buffer is owned by the caller.
func Read(r *binary.Reader, s Span) ([]byte, error) {
	if s.Count == 0 {
		return []byte{}, nil
	}
	data, err := r.ReadAt(s.Offset, s.Size())
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return data, nil
}

// elements returns rows*cols, failing if the byte extent of the payload
// would not fit in an int64 file offset.
func elements(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("%w: negative shape %dx%d", ErrExtent, rows, cols)
	}
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	const limit int64 = (math.MaxInt64 - header.PayloadOffset) / dtype.ElementSize
	if int64(rows) > limit/int64(cols) {
		return 0, fmt.Errorf("%w: shape %dx%d", ErrExtent, rows, cols)
	}
	n := int64(rows) * int64(cols)
	if n > int64(math.MaxInt) {
		return 0, fmt.Errorf("%w: shape %dx%d", ErrExtent, rows, cols)
	}
	return int(n), nil
}
