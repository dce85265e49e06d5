// Package dtype provides NPY element type handling and Go type conversion.
//
// The NPY header names its element type with a numpy descr string. Two of
// them are understood here:
//
//	descr | NumType | Go read type
//	------|---------|----------------------------------------
//	<i8   | Int64   | int64, uint64, float32, float64 (by value)
//	<f8   | Float64 | int64, uint64, float32, float64 (by value)
//
// Every element occupies exactly 8 little-endian bytes on disk, whatever its
// logical type. Byte order is always applied explicitly through
// encoding/binary; host endianness is never assumed.
//
// # Reading Data
//
// The double decoders turn one 8-byte chunk into a float64:
//
//	v := dtype.DecodeInteger(chunk) // two's complement int64, widened
//	v := dtype.DecodeDouble(chunk)  // IEEE-754 binary64
//
// [NumType.Decoder] selects between them and fails with [ErrUnhandledType]
// for anything else. [Convert] fills a typed slice from a raw payload.
//
// # Writing Data
//
// [Encode] produces the raw payload for a slice, [Of] reports which NumType a
// Go element type is stored as.
package dtype
