package filter

import (
	"fmt"
	"strings"
)

// Filter decodes one layer of compression.
type Filter interface {
	// Suffix returns the file name suffix that selects the filter.
	Suffix() string

	// Decode transforms encoded data to decoded form, producing at most
	// limit bytes.
	Decode(input []byte, limit int64) ([]byte, error)
}

// Registry maps file suffixes to filter constructors.
var Registry = map[string]func() Filter{
	SuffixZstd: func() Filter { return NewZstd() },
	SuffixGzip: func() Filter { return NewGzip() },
}

// knownNames maps recognised but unsupported suffixes to their names.
var knownNames = map[string]string{
	".bz2": "bzip2",
	".xz":  "xz",
	".lz4": "LZ4",
}

// New creates the filter for a suffix such as ".zst".
func New(suffix string) (Filter, error) {
	constructor, ok := Registry[suffix]
	if !ok {
		if name, known := knownNames[suffix]; known {
			return nil, fmt.Errorf("%s compression (%s) is not supported", name, suffix)
		}
		return nil, fmt.Errorf("unsupported compression suffix: %q", suffix)
	}
	return constructor(), nil
}

// Unsupported reports whether path ends in a recognised compression suffix
// that has no filter.
func Unsupported(path string) (string, bool) {
	for suffix := range knownNames {
		if strings.HasSuffix(path, suffix) {
			return suffix, true
		}
	}
	return "", false
}
