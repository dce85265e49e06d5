package dtype

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode converts src to a raw little-endian payload stored as t.
// Values are converted by value: floats written as '<i8' are truncated,
// integers written as '<f8' are rounded to the nearest double.
func Encode[T Number](t NumType, src []T) ([]byte, error) {
	data := make([]byte, len(src)*ElementSize)

	switch t {
	case Int64:
		for i, v := range src {
			binary.LittleEndian.PutUint64(data[i*ElementSize:], uint64(int64(v)))
		}
	case Float64:
		for i, v := range src {
			binary.LittleEndian.PutUint64(data[i*ElementSize:], math.Float64bits(float64(v)))
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnhandledType, t)
	}
	return data, nil
}
