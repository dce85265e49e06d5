// Package binary provides low-level binary I/O operations for NPY file parsing.
package binary

import (
	"errors"
	"fmt"
	"io"
)

// ErrShortRead is returned when the source holds fewer bytes than requested.
var ErrShortRead = errors.New("short read")

// ShortReadError describes a read that could not be satisfied in full.
type ShortReadError struct {
	Offset int64
	Want   int
	Got    int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read at offset %d: want %d bytes, got %d", e.Offset, e.Want, e.Got)
}

func (e *ShortReadError) Unwrap() error { return ErrShortRead }

// Reader reads fixed-size regions from a seekable byte source.
// It never closes the source.
type Reader struct {
	rs   io.ReadSeeker
	size int64 // -1 until known
}

// NewReader creates a reader over rs.
func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{
		rs:   rs,
		size: -1,
	}
}

// Size returns the total length of the source. The current position of the
// underlying stream is restored afterwards.
func (r *Reader) Size() (int64, error) {
	if r.size >= 0 {
		return r.size, nil
	}
	cur, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := r.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.rs.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	r.size = end
	return end, nil
}

// ReadAt seeks to offset and reads exactly n bytes.
// The extent is checked against the source size before anything is
// allocated, so an oversized request fails without a large allocation.
func (r *Reader) ReadAt(offset int64, n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	size, err := r.Size()
	if err != nil {
		return nil, fmt.Errorf("sizing source: %w", err)
	}
	if avail := size - offset; avail < int64(n) {
		if avail < 0 {
			avail = 0
		}
		return nil, &ShortReadError{Offset: offset, Want: n, Got: int(avail)}
	}

	if _, err := r.rs.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to %d: %w", offset, err)
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(r.rs, buf)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, &ShortReadError{Offset: offset, Want: n, Got: got}
		}
		return nil, err
	}
	return buf, nil
}
