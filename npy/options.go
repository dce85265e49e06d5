package npy

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures reads.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	parallelism int   // OpenMany only
	maxDecoded  int64 // compressed files and archive members
}

// DefaultMaxDecodedSize caps the in-memory size of a decompressed file or
// archive member.
const DefaultMaxDecodedSize = 1 << 32

func defaultOptions() *options {
	return &options{
		logger:      zap.NewNop(),
		parallelism: runtime.NumCPU(),
		maxDecoded:  DefaultMaxDecodedSize,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithParallelism bounds how many files OpenMany opens at once.
// Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithMaxDecodedSize bounds how many bytes a .zst or .gz file, or an .npz
// member, may expand to in memory. Values below 1 are ignored.
func WithMaxDecodedSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDecoded = n
		}
	}
}
