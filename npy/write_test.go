package npy

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestWriteVectorFloatRoundTrip(t *testing.T) {
	values := []float64{0, 1, -2.5, math.Pi, math.MaxFloat64, -math.SmallestNonzeroFloat64, math.Inf(1)}

	var buf bytes.Buffer
	require.NoError(t, WriteVector(&buf, values))
	assert.Equal(t, 128+8*len(values), buf.Len())

	got, meta, err := ReadVector[float64](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Metadata{NumType: Float64, Rows: len(values), Cols: 1}, meta)
	require.Len(t, got, len(values))
	for i := range values {
		assert.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "element %d", i)
	}
}

func TestWriteVectorIntRoundTrip(t *testing.T) {
	values := []int64{math.MinInt64, -1, 0, 1, 1 << 53, math.MaxInt64}

	var buf bytes.Buffer
	require.NoError(t, WriteVector(&buf, values))

	got, meta, err := ReadVector[int64](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Int64, meta.NumType)
	assert.Equal(t, values, got)
}

func TestWriteVectorMatchesHandBuiltLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVector(&buf, []int64{-1, 0, math.MaxInt64}))

	expected := rawNPY("{'descr': '<i8', 'fortran_order': False, 'shape': (3,), }", intWords(-1, 0, math.MaxInt64)...)
	assert.Equal(t, expected, buf.Bytes())
}

func TestWriteMatrix(t *testing.T) {
	m := mat.NewDense(2, 3, matrixValues)

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, Float64, m))
	assert.Equal(t, rawNPY(matrixDict, floatWords(matrixValues...)...), buf.Bytes())

	table, meta, err := ReadLookupTable(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Metadata{NumType: Float64, Rows: 2, Cols: 3}, meta)
	assert.True(t, mat.Equal(m, table))
}

func TestWriteMatrixAsIntegers(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1.9, -1.9, 40, 3})

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, Int64, m))

	values, _, err := ReadVector[int64](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -1, 40, 3}, values)
}

func TestWriteMatrixUnhandledType(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMatrix(&buf, Unknown, mat.NewDense(1, 1, nil))
	assert.ErrorIs(t, err, ErrUnhandledType)
	assert.Zero(t, buf.Len())
}

func TestWriteFileAndOpenMany(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.npy"),
		filepath.Join(dir, "b.npy"),
		filepath.Join(dir, "c.npy"),
	}
	for i, path := range paths {
		require.NoError(t, WriteFile(path, []float64{float64(i), float64(i) + 0.5}))
	}

	files, err := OpenMany(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, files, len(paths))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for i, f := range files {
		assert.Equal(t, paths[i], f.Path())
		values, err := f.ReadFloat64()
		require.NoError(t, err)
		assert.Equal(t, []float64{float64(i), float64(i) + 0.5}, values)
	}
}

func TestOpenManyFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.npy")
	require.NoError(t, WriteFile(good, []int64{1}))

	_, err := OpenMany(context.Background(), []string{good, filepath.Join(dir, "missing.npy")})
	assert.Error(t, err)

	files, err := OpenMany(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, files)
}

func TestOpenManyCanceled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.npy")
	require.NoError(t, WriteFile(path, []float64{1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := OpenMany(ctx, []string{path, path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenManySerial(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, fmt.Sprintf("v%d.npy", i))
		require.NoError(t, WriteFile(path, []int64{int64(i)}))
		paths = append(paths, path)
	}

	files, err := OpenMany(context.Background(), paths, WithParallelism(1), WithParallelism(0))
	require.NoError(t, err)
	for i, f := range files {
		values, err := f.ReadInt64()
		require.NoError(t, err)
		assert.Equal(t, []int64{int64(i)}, values)
		require.NoError(t, f.Close())
	}
	assert.Equal(t, 1, applyOptions([]Option{WithParallelism(1), WithParallelism(-3)}).parallelism)
}
