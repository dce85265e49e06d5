package npy

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-npy/internal/filter"
)

// Archive is an open .npz file: a zip archive of NPY members.
type Archive struct {
	path    string
	zr      *zip.ReadCloser
	members map[string]*zip.File
	opts    *options
	closed  bool
}

// OpenArchive opens an .npz archive for reading.
func OpenArchive(path string, opts ...Option) (*Archive, error) {
	o := applyOptions(opts)

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	members := make(map[string]*zip.File, len(zr.File))
	for _, zf := range zr.File {
		if !strings.HasSuffix(zf.Name, ".npy") {
			continue
		}
		members[strings.TrimSuffix(zf.Name, ".npy")] = zf
	}
	o.logger.Debug("opened npz archive", zap.String("path", path), zap.Int("members", len(members)))

	return &Archive{
		path:    path,
		zr:      zr,
		members: members,
		opts:    o,
	}, nil
}

// Close closes the archive. Files opened from it stay readable.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	return a.zr.Close()
}

// Path returns the archive path.
func (a *Archive) Path() string {
	return a.path
}

// Names returns the member names, without the ".npy" suffix, sorted.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.members))
	for name := range a.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open reads a member into memory and returns it as a File. Members larger
// than the WithMaxDecodedSize limit fail with ErrTooLarge.
// name may be given with or without the ".npy" suffix.
func (a *Archive) Open(name string) (*File, error) {
	if a.closed {
		return nil, ErrClosed
	}

	zf, ok := a.members[strings.TrimSuffix(name, ".npy")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if zf.UncompressedSize64 > uint64(a.opts.maxDecoded) {
		return nil, fmt.Errorf("%w: member %s declares %d bytes, limit %d",
			ErrTooLarge, zf.Name, zf.UncompressedSize64, a.opts.maxDecoded)
	}

	rc, err := zf.Open()
	if err != nil {
		return nil, fmt.Errorf("opening member %s: %w", zf.Name, err)
	}
	defer rc.Close()

	// The declared size is not trusted.
	data, err := filter.ReadLimited(rc, a.opts.maxDecoded)
	if err != nil {
		return nil, translateError(fmt.Errorf("reading member %s: %w", zf.Name, err))
	}

	return newFile(a.path+":"+zf.Name, bytes.NewReader(data), nil, a.opts)
}
