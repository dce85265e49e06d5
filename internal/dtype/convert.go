package dtype

import (
	"encoding/binary"
	"fmt"
)

// Convert decodes len(dst) elements of raw into dst.
//
// Float payloads go through DecodeDouble and are then converted by value.
// Integer payloads read into a float T go through DecodeInteger and are then
// narrowed; read into an integer T they are converted straight from the
// int64, so all 64 bits are kept.
func Convert[T Number](t NumType, raw []byte, dst []T) error {
	if need := len(dst) * ElementSize; len(raw) < need {
		return fmt.Errorf("payload holds %d bytes, need %d", len(raw), need)
	}

	switch t {
	case Int64:
		if Of[T]() == Float64 {
			for i := range dst {
				dst[i] = T(DecodeInteger(raw[i*ElementSize:]))
			}
			return nil
		}
		for i := range dst {
			v := int64(binary.LittleEndian.Uint64(raw[i*ElementSize:]))
			dst[i] = T(v)
		}
	case Float64:
		for i := range dst {
			dst[i] = T(DecodeDouble(raw[i*ElementSize:]))
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnhandledType, t)
	}
	return nil
}

// ConvertToSlice decodes n elements of raw into a newly allocated slice.
func ConvertToSlice[T Number](t NumType, raw []byte, n int) ([]T, error) {
	result := make([]T, n)
	if err := Convert(t, raw, result); err != nil {
		return nil, err
	}
	return result, nil
}
