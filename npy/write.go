package npy

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	binpkg "github.com/robert-malhotra/go-npy/internal/binary"
	"github.com/robert-malhotra/go-npy/internal/dtype"
	"github.com/robert-malhotra/go-npy/internal/header"
)

// WriteVector writes values as a rank-1 array, shape (n,).
// int64 and uint64 are stored as '<i8', float32 and float64 as '<f8'.
func WriteVector[T Number](w io.Writer, values []T) error {
	return writeArray(w, dtype.Of[T](), []int{len(values)}, values)
}

// WriteMatrix writes m row-major as a rank-2 array stored as nt.
// Values written as Int64 are truncated toward zero.
func WriteMatrix(w io.Writer, nt NumType, m mat.Matrix) error {
	rows, cols := m.Dims()
	values := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			values = append(values, m.At(i, j))
		}
	}
	return writeArray(w, nt, []int{rows, cols}, values)
}

// WriteFile creates path and writes values to it as a rank-1 array.
func WriteFile[T Number](path string, values []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteVector(f, values); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func writeArray[T Number](w io.Writer, nt NumType, shape []int, values []T) error {
	payload, err := dtype.Encode(nt, values)
	if err != nil {
		return translateError(err)
	}

	bw := binpkg.NewWriter(w)
	if _, err := header.Write(bw, nt, shape); err != nil {
		return translateError(fmt.Errorf("writing header: %w", err))
	}
	if err := bw.WriteBytes(payload); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}
