package npy

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-npy/internal/binary"
	"github.com/robert-malhotra/go-npy/internal/dtype"
	"github.com/robert-malhotra/go-npy/internal/filter"
	"github.com/robert-malhotra/go-npy/internal/header"
	"github.com/robert-malhotra/go-npy/internal/layout"
)

// Common errors
var (
	ErrNotNPY          = errors.New("not an NPY file")
	ErrIndexOutOfRange = errors.New("row index out of range")
	ErrUnhandledType   = errors.New("unhandled element type")
	ErrTruncated       = errors.New("truncated read")
	ErrMalformedHeader = errors.New("malformed header")
	ErrHeaderTooLong   = errors.New("header too long")
	ErrNotFound        = errors.New("archive member not found")
	ErrClosed          = errors.New("file is closed")
	ErrTooLarge        = errors.New("decoded data exceeds size limit")
)

// translateError maps internal package errors onto the public sentinels.
// The internal error stays in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, binary.ErrShortRead):
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	case errors.Is(err, dtype.ErrUnhandledType):
		return fmt.Errorf("%w: %w", ErrUnhandledType, err)
	case errors.Is(err, layout.ErrRow):
		return fmt.Errorf("%w: %w", ErrIndexOutOfRange, err)
	case errors.Is(err, header.ErrMalformed), errors.Is(err, layout.ErrExtent):
		return fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	case errors.Is(err, header.ErrHeaderTooLong):
		return fmt.Errorf("%w: %w", ErrHeaderTooLong, err)
	case errors.Is(err, filter.ErrSizeLimit):
		return fmt.Errorf("%w: %w", ErrTooLarge, err)
	}
	return err
}
