package filter

import (
	"fmt"
	"strings"
)

// Pipeline is the ordered set of filters named by a path, outermost first.
type Pipeline struct {
	filters []Filter
}

// ForPath builds the pipeline for path by peeling registered suffixes off
// its end. A path without a compression suffix yields an empty pipeline.
func ForPath(path string) *Pipeline {
	p := &Pipeline{}
	for {
		f := match(path)
		if f == nil {
			return p
		}
		p.filters = append(p.filters, f)
		path = strings.TrimSuffix(path, f.Suffix())
	}
}

func match(path string) Filter {
	for suffix, constructor := range Registry {
		if strings.HasSuffix(path, suffix) {
			return constructor()
		}
	}
	return nil
}

// Decode applies every filter in order. Each layer's output is capped at
// limit bytes.
func (p *Pipeline) Decode(input []byte, limit int64) ([]byte, error) {
	data := input
	for _, f := range p.filters {
		var err error
		data, err = f.Decode(data, limit)
		if err != nil {
			return nil, fmt.Errorf("filter %s decode: %w", f.Suffix(), err)
		}
	}
	return data, nil
}

// Suffixes returns the suffixes the pipeline strips, outermost first.
func (p *Pipeline) Suffixes() []string {
	out := make([]string, len(p.filters))
	for i, f := range p.filters {
		out[i] = f.Suffix()
	}
	return out
}

// Empty returns true if the pipeline has no filters.
func (p *Pipeline) Empty() bool {
	return len(p.filters) == 0
}

// Len returns the number of filters in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.filters)
}
