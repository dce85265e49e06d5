package dtype

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decoder turns one 8-byte little-endian chunk into a float64.
type Decoder func(b []byte) float64

// DecodeInteger interprets b as a little-endian two's complement int64 and
// widens it to float64. Magnitudes beyond 2^53 lose precision.
func DecodeInteger(b []byte) float64 {
	return float64(int64(binary.LittleEndian.Uint64(b)))
}

// DecodeDouble interprets b as a little-endian IEEE-754 binary64.
func DecodeDouble(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// Decoder returns the double decoder for t.
func (t NumType) Decoder() (Decoder, error) {
	switch t {
	case Int64:
		return DecodeInteger, nil
	case Float64:
		return DecodeDouble, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnhandledType, t)
	}
}

// DecodeAll decodes every 8-byte chunk of raw with t's decoder and hands the
// results to set in linear order.
func DecodeAll(t NumType, raw []byte, set func(i int, v float64)) error {
	dec, err := t.Decoder()
	if err != nil {
		return err
	}
	n := len(raw) / ElementSize
	for i := 0; i < n; i++ {
		set(i, dec(raw[i*ElementSize:(i+1)*ElementSize]))
	}
	return nil
}
