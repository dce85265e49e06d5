// Package npy provides a pure Go reader for NPY array files.
//
// An NPY file is a 128-byte preamble (magic, version, ASCII dictionary
// naming the element type and shape) followed by a row-major little-endian
// payload of 8-byte elements. Two element types are supported, '<i8' and
// '<f8', and shapes of rank two or less.
//
// Every read operation validates the magic, parses the dictionary and then
// reads only the payload bytes it needs:
//
//	values, meta, err := npy.ReadVector[float64](f)
//	table, meta, err := npy.ReadLookupTable(f)
//	row, meta, err := npy.ReadLookupRow(f, 3)
//
// The byte source is only read and repositioned, never closed.
package npy

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-npy/internal/binary"
	"github.com/robert-malhotra/go-npy/internal/dtype"
	"github.com/robert-malhotra/go-npy/internal/header"
	"github.com/robert-malhotra/go-npy/internal/layout"
)

// Metadata is the element type and shape declared by a file's header.
type Metadata = header.Metadata

// NumType identifies the on-disk element encoding.
type NumType = dtype.NumType

// Element encodings.
const (
	Unknown = dtype.Unknown
	Int64   = dtype.Int64
	Float64 = dtype.Float64
)

// Number is the set of element types a vector can be read into or written from.
type Number = dtype.Number

// DecodeInteger interprets 8 little-endian bytes as a two's complement int64
// and widens it to float64.
func DecodeInteger(b []byte) float64 {
	return dtype.DecodeInteger(b)
}

// DecodeDouble interprets 8 little-endian bytes as an IEEE-754 double.
func DecodeDouble(b []byte) float64 {
	return dtype.DecodeDouble(b)
}

// CheckHeader reports whether src carries the "NUMPY" magic at offset 1.
func CheckHeader(src io.ReadSeeker) bool {
	return header.CheckMagic(binary.NewReader(src))
}

// ReadMetadata validates the magic and parses the header dictionary.
func ReadMetadata(src io.ReadSeeker, opts ...Option) (Metadata, error) {
	_, meta, err := readHeader(src, applyOptions(opts))
	return meta, err
}

// ReadVector reads the whole payload as a flat slice in row-major order.
// Elements are converted by value into T.
func ReadVector[T Number](src io.ReadSeeker, opts ...Option) ([]T, Metadata, error) {
	o := applyOptions(opts)
	r, meta, err := readHeader(src, o)
	if err != nil {
		return nil, meta, err
	}

	raw, span, err := readPayload(r, meta, o, layout.Full)
	if err != nil {
		return nil, meta, err
	}

	values, err := dtype.ConvertToSlice[T](meta.NumType, raw, span.Count)
	if err != nil {
		return nil, meta, translateError(err)
	}
	return values, meta, nil
}

// ReadLookupTable reads the whole payload into a Rows x Cols matrix.
// Element i lands at (i/Cols, i%Cols). A shape with no elements yields an
// empty matrix.
func ReadLookupTable(src io.ReadSeeker, opts ...Option) (*mat.Dense, Metadata, error) {
	o := applyOptions(opts)
	r, meta, err := readHeader(src, o)
	if err != nil {
		return nil, meta, err
	}

	raw, span, err := readPayload(r, meta, o, layout.Full)
	if err != nil {
		return nil, meta, err
	}
	if span.Count == 0 {
		return &mat.Dense{}, meta, nil
	}

	m := mat.NewDense(meta.Rows, meta.Cols, nil)
	err = dtype.DecodeAll(meta.NumType, raw, func(i int, v float64) {
		m.Set(i/meta.Cols, i%meta.Cols, v)
	})
	if err != nil {
		return nil, meta, translateError(err)
	}
	return m, meta, nil
}

// ReadLookupRow reads row k only. The index is checked before any payload
// I/O; rows before k are skipped with a single seek.
func ReadLookupRow(src io.ReadSeeker, k int, opts ...Option) (*mat.VecDense, Metadata, error) {
	o := applyOptions(opts)
	r, meta, err := readHeader(src, o)
	if err != nil {
		return nil, meta, err
	}

	raw, span, err := readPayload(r, meta, o, func(m Metadata) (layout.Span, error) {
		return layout.Row(m, k)
	})
	if err != nil {
		return nil, meta, err
	}
	if span.Count == 0 {
		return &mat.VecDense{}, meta, nil
	}

	row := mat.NewVecDense(meta.Cols, nil)
	err = dtype.DecodeAll(meta.NumType, raw, row.SetVec)
	if err != nil {
		return nil, meta, translateError(err)
	}
	return row, meta, nil
}

// readHeader runs the magic check and the dictionary parse.
func readHeader(src io.ReadSeeker, o *options) (*binary.Reader, Metadata, error) {
	r := binary.NewReader(src)
	if !header.CheckMagic(r) {
		return nil, Metadata{}, ErrNotNPY
	}

	meta, err := header.ReadMetadata(r)
	if err != nil {
		return nil, Metadata{}, translateError(fmt.Errorf("reading metadata: %w", err))
	}

	o.logger.Debug("parsed npy header",
		zap.String("descr", meta.NumType.Descr()),
		zap.Int("rows", meta.Rows),
		zap.Int("cols", meta.Cols))
	return r, meta, nil
}

// readPayload resolves the span, checks that the element type can be
// decoded and reads the span's bytes.
func readPayload(
	r *binary.Reader,
	meta Metadata,
	o *options,
	locate func(Metadata) (layout.Span, error),
) ([]byte, layout.Span, error) {
	span, err := locate(meta)
	if err != nil {
		return nil, layout.Span{}, translateError(err)
	}
	if _, err := meta.NumType.Decoder(); err != nil {
		return nil, layout.Span{}, translateError(err)
	}

	o.logger.Debug("reading npy payload",
		zap.Int64("offset", span.Offset),
		zap.Int("bytes", span.Size()))

	raw, err := layout.Read(r, span)
	if err != nil {
		return nil, layout.Span{}, translateError(err)
	}
	return raw, span, nil
}
