// Package filter decodes compressed NPY files before they are parsed.
//
// A file's compression is named by its trailing suffixes. Each known suffix
// maps to a [Filter], and a [Pipeline] strips them from the outside in, so
// "weights.npy.gz" is gunzipped and "weights.npy.zst" is zstd-decoded.
//
// # Supported Filters
//
//   - ".zst": Zstandard via [Zstd].
//   - ".gz": gzip via [Gzip].
//
// Both use github.com/klauspost/compress. Decoding takes a byte limit and
// fails with [ErrSizeLimit] instead of buffering past it.
//
// # Pipeline
//
//	p := filter.ForPath("weights.npy.zst")
//	if !p.Empty() {
//		data, err := p.Decode(compressed, 1<<30)
//	}
package filter
