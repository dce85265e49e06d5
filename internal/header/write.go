package header

import (
	"fmt"
	"strconv"
	"strings"

	binpkg "github.com/robert-malhotra/go-npy/internal/binary"
	"github.com/robert-malhotra/go-npy/internal/dtype"
)

// Version written into new files.
const (
	VersionMajor = 1
	VersionMinor = 0
)

// FormatDict renders the header dictionary for nt and shape the way numpy
// writes it. shape may hold zero, one or two dimensions.
func FormatDict(nt dtype.NumType, shape []int) (string, error) {
	if nt.Descr() == "" {
		return "", fmt.Errorf("%w: %s", dtype.ErrUnhandledType, nt)
	}

	var tuple string
	switch len(shape) {
	case 0:
		tuple = "()"
	case 1:
		tuple = "(" + strconv.Itoa(shape[0]) + ",)"
	case 2:
		tuple = "(" + strconv.Itoa(shape[0]) + ", " + strconv.Itoa(shape[1]) + ")"
	default:
		return "", fmt.Errorf("%w: rank %d", ErrMalformed, len(shape))
	}
	for _, d := range shape {
		if d < 0 {
			return "", fmt.Errorf("%w: negative dimension %d", ErrMalformed, d)
		}
	}

	var sb strings.Builder
	sb.WriteString("{'descr': '")
	sb.WriteString(nt.Descr())
	sb.WriteString("', 'fortran_order': False, 'shape': ")
	sb.WriteString(tuple)
	sb.WriteString(", }")
	return sb.String(), nil
}

// Write writes the full 128-byte preamble for nt and shape.
// Returns the number of bytes written.
func Write(w *binpkg.Writer, nt dtype.NumType, shape []int) (int64, error) {
	dict, err := FormatDict(nt, shape)
	if err != nil {
		return 0, err
	}
	if err := checkDictLen(dict); err != nil {
		return 0, err
	}

	startPos := w.Pos()

	if err := w.WriteUint8(Prefix); err != nil {
		return 0, err
	}
	if err := w.WriteBytes(Magic); err != nil {
		return 0, err
	}
	if err := w.WriteUint8(VersionMajor); err != nil {
		return 0, err
	}
	if err := w.WriteUint8(VersionMinor); err != nil {
		return 0, err
	}
	if err := w.WriteUint16(DictLen); err != nil {
		return 0, err
	}
	if err := w.WriteBytes([]byte(dict)); err != nil {
		return 0, err
	}
	if err := w.WritePadding(PayloadOffset, ' ', '\n'); err != nil {
		return 0, err
	}

	return w.Pos() - startPos, nil
}

// checkDictLen rejects a dictionary that leaves no room for the terminating
// newline. The three keys FormatDict writes always fit, even with two 19-digit
// dimensions; the check covers dictionaries that grow new keys.
func checkDictLen(dict string) error {
	if len(dict) > DictLen-1 {
		return fmt.Errorf("%w: %d bytes", ErrHeaderTooLong, len(dict))
	}
	return nil
}
