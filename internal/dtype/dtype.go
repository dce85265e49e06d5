package dtype

import (
	"errors"
	"fmt"
)

// ElementSize is the on-disk size of every element, regardless of NumType.
const ElementSize = 8

// ErrUnhandledType is returned when a payload has to be decoded with a
// NumType that has no decoder.
var ErrUnhandledType = errors.New("unhandled element type")

// NumType identifies the element encoding declared by the header.
type NumType uint8

const (
	Unknown NumType = 0
	Int64   NumType = 1 // '<i8'
	Float64 NumType = 2 // '<f8'
)

// Number is the set of Go element types a payload can be read into.
type Number interface {
	~int64 | ~uint64 | ~float32 | ~float64
}

// ParseDescr maps a numpy descr token to a NumType. Unrecognized tokens
// yield Unknown.
func ParseDescr(descr string) NumType {
	switch descr {
	case "<i8":
		return Int64
	case "<f8":
		return Float64
	default:
		return Unknown
	}
}

// Descr returns the numpy descr token for t, or "" for Unknown.
func (t NumType) Descr() string {
	switch t {
	case Int64:
		return "<i8"
	case Float64:
		return "<f8"
	default:
		return ""
	}
}

func (t NumType) String() string {
	switch t {
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("NumType(%d)", uint8(t))
	}
}

// Of returns the NumType values of T are stored as.
func Of[T Number]() NumType {
	var zero T
	switch any(zero).(type) {
	case int64, uint64:
		return Int64
	case float32, float64:
		return Float64
	}
	// Named types: integers truncate a fraction away.
	half := 0.5
	if T(half) == 0 {
		return Int64
	}
	return Float64
}
