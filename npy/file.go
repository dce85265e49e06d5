package npy

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-npy/internal/filter"
)

// File represents an open NPY array.
type File struct {
	path   string
	src    io.ReadSeeker
	closer io.Closer // nil for in-memory sources
	opts   *options
	meta   Metadata
	closed bool
}

// Open opens an NPY file for reading and validates its header.
// Paths ending in ".zst" or ".gz" are decompressed into memory first, up to
// the WithMaxDecodedSize limit.
func Open(path string, opts ...Option) (*File, error) {
	o := applyOptions(opts)

	if suffix, ok := filter.Unsupported(path); ok {
		_, err := filter.New(suffix)
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	pipeline := filter.ForPath(path)
	if pipeline.Empty() {
		file, err := newFile(path, f, f, o)
		if err != nil {
			f.Close()
			return nil, err
		}
		return file, nil
	}

	defer f.Close()
	compressed, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := pipeline.Decode(compressed, o.maxDecoded)
	if err != nil {
		return nil, translateError(fmt.Errorf("decompressing %s: %w", path, err))
	}
	o.logger.Debug("decompressed npy file",
		zap.String("path", path),
		zap.Strings("filters", pipeline.Suffixes()),
		zap.Int("bytes", len(data)))
	return newFile(path, bytes.NewReader(data), nil, o)
}

// OpenReader wraps an already open byte source. The source is not closed by
// File.Close.
func OpenReader(name string, src io.ReadSeeker, opts ...Option) (*File, error) {
	return newFile(name, src, nil, applyOptions(opts))
}

func newFile(path string, src io.ReadSeeker, closer io.Closer, o *options) (*File, error) {
	_, meta, err := readHeader(src, o)
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	return &File{
		path:   path,
		src:    src,
		closer: closer,
		opts:   o,
		meta:   meta,
	}, nil
}

// Close closes the underlying file, if File owns one.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// Path returns the path the file was opened from.
func (f *File) Path() string {
	return f.path
}

// Metadata returns the metadata parsed when the file was opened.
func (f *File) Metadata() Metadata {
	return f.meta
}

// Shape returns the declared rows and columns.
func (f *File) Shape() (rows, cols int) {
	return f.meta.Rows, f.meta.Cols
}

// NumElements returns the total number of elements.
func (f *File) NumElements() int {
	return f.meta.NumElements()
}

// ReadFloat64 reads the payload as float64 values.
func (f *File) ReadFloat64() ([]float64, error) {
	return readVector[float64](f)
}

// ReadFloat32 reads the payload as float32 values.
func (f *File) ReadFloat32() ([]float32, error) {
	return readVector[float32](f)
}

// ReadInt64 reads the payload as int64 values.
func (f *File) ReadInt64() ([]int64, error) {
	return readVector[int64](f)
}

// ReadUint64 reads the payload as uint64 values.
func (f *File) ReadUint64() ([]uint64, error) {
	return readVector[uint64](f)
}

// Table reads the payload as a Rows x Cols matrix.
func (f *File) Table() (*mat.Dense, error) {
	if f.closed {
		return nil, ErrClosed
	}
	m, _, err := ReadLookupTable(f.src, WithLogger(f.opts.logger))
	return m, err
}

// Row reads a single row of the table.
func (f *File) Row(k int) (*mat.VecDense, error) {
	if f.closed {
		return nil, ErrClosed
	}
	v, _, err := ReadLookupRow(f.src, k, WithLogger(f.opts.logger))
	return v, err
}

func readVector[T Number](f *File) ([]T, error) {
	if f.closed {
		return nil, ErrClosed
	}
	values, _, err := ReadVector[T](f.src, WithLogger(f.opts.logger))
	return values, err
}
