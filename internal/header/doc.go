// Package header handles the fixed 128-byte NPY preamble.
//
// # Layout
//
//	offset | size | content
//	-------|------|--------------------------------------------
//	0      | 1    | prefix byte 0x93 (not validated)
//	1      | 5    | ASCII "NUMPY"
//	6      | 4    | version and header length (not parsed)
//	10     | 118  | ASCII dictionary describing descr and shape
//	128    | ...  | payload, 8 little-endian bytes per element
//
// # Reading
//
//	if !header.CheckMagic(r) {
//	    // not an NPY file
//	}
//	meta, err := header.ReadMetadata(r)
//
// The dictionary is parsed by a four-state machine (see [Parse]). A
// dictionary that does not close inside the 118-byte window is rejected
// with [ErrMalformed]; the window is never grown.
//
// # Writing
//
// [Write] emits a version 1.0 preamble whose dictionary is padded with
// spaces and a final newline up to [PayloadOffset].
package header
