// Package layout locates and reads the raw payload of an NPY file.
//
// The payload is contiguous, row-major and starts at the fixed header
// boundary. Two spans are supported:
//
//   - [Full]: every element, Rows*Cols chunks of 8 bytes.
//   - [Row]: one row, Cols chunks starting at row*Cols.
//
// Span arithmetic is overflow-checked; a shape whose byte extent does not
// fit in an int64 is rejected with [ErrExtent] before any read happens.
package layout
