package binary

import (
	"encoding/binary"
	"io"
)

// Writer emits little-endian binary data to a sequential sink and tracks
// how many bytes have been written.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
	pos   int64
}

// NewWriter creates a little-endian writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		order: binary.LittleEndian,
	}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int64 {
	return w.pos
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.Write(data)
	w.pos += int64(n)
	return err
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) error {
	return w.WriteBytes([]byte{v})
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	buf := make([]byte, 2)
	w.order.PutUint16(buf, v)
	return w.WriteBytes(buf)
}

// WritePadding writes fill bytes until the position reaches a multiple of
// alignment, leaving room for a final terminator byte when term is non-zero.
func (w *Writer) WritePadding(alignment int64, fill, term byte) error {
	if alignment <= 1 {
		return nil
	}
	extra := int64(0)
	if term != 0 {
		extra = 1
	}
	padding := (alignment - (w.pos+extra)%alignment) % alignment
	buf := make([]byte, padding+extra)
	for i := range buf {
		buf[i] = fill
	}
	if term != 0 {
		buf[len(buf)-1] = term
	}
	return w.WriteBytes(buf)
}
