package header

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-npy/internal/dtype"
)

// parseState is the position of the dictionary scanner.
type parseState uint8

const (
	awaitOpen  parseState = iota // scanning for '{'
	awaitKey                     // accumulating a key, or '}' ends the dict
	awaitValue                   // accumulating a value up to an unparenthesized ','
	done                         // trailing characters are ignored
)

func (s parseState) String() string {
	switch s {
	case awaitOpen:
		return "await-open"
	case awaitKey:
		return "await-key"
	case awaitValue:
		return "await-value"
	case done:
		return "done"
	default:
		return fmt.Sprintf("parseState(%d)", uint8(s))
	}
}

// parser holds the scanner state for one dictionary.
type parser struct {
	state     parseState
	parenOpen bool
	tok       strings.Builder
	key       string
	meta      Metadata
	sawShape  bool
}

// Parse scans a header dictionary of the form
//
//	{'descr': '<f8', 'fortran_order': False, 'shape': (2, 3), }
//
// Spaces and single quotes are dropped from keys and values. A ',' inside a
// parenthesized value does not end the value. Every key/value pair is
// dispatched when its terminating ',' is seen, so the last pair needs a
// trailing comma, as numpy writes it. Keys other than descr and shape are
// ignored.
//
// An unrecognized descr leaves NumType Unknown; that is reported when the
// payload is decoded, not here.
func Parse(text []byte) (Metadata, error) {
	p := &parser{}
	for _, c := range text {
		if err := p.step(c); err != nil {
			return Metadata{}, err
		}
		if p.state == done {
			break
		}
	}

	if p.state != done {
		return Metadata{}, fmt.Errorf("%w: dictionary not closed within %d bytes (state %s)",
			ErrMalformed, len(text), p.state)
	}
	if !p.sawShape {
		return Metadata{}, fmt.Errorf("%w: no shape entry", ErrMalformed)
	}
	return p.meta, nil
}

func (p *parser) step(c byte) error {
	switch p.state {
	case awaitOpen:
		if c == '{' {
			p.state = awaitKey
			p.tok.Reset()
		}
	case awaitKey:
		switch c {
		case '}':
			p.state = done
		case ':':
			p.key = p.tok.String()
			p.tok.Reset()
			p.state = awaitValue
		case ' ', '\'':
		default:
			p.tok.WriteByte(c)
		}
	case awaitValue:
		switch {
		case c == ',' && !p.parenOpen:
			val := p.tok.String()
			p.tok.Reset()
			p.state = awaitKey
			return p.dispatch(p.key, val)
		case c == ' ' || c == '\'':
		default:
			if c == '(' {
				p.parenOpen = true
			} else if c == ')' {
				p.parenOpen = false
			}
			p.tok.WriteByte(c)
		}
	}
	return nil
}

func (p *parser) dispatch(key, val string) error {
	switch key {
	case "descr":
		if nt := dtype.ParseDescr(val); nt != dtype.Unknown {
			p.meta.NumType = nt
		}
	case "shape":
		rows, cols, err := parseShape(val)
		if err != nil {
			return err
		}
		p.meta.Rows, p.meta.Cols = rows, cols
		p.sawShape = true
	}
	return nil
}

// parseShape reads a shape tuple with at most two dimensions. An elided
// dimension counts as 1: "(5,)" is 5x1 and "()" is 1x1.
func parseShape(val string) (rows, cols int, err error) {
	rows, cols = 1, 1
	var buf strings.Builder
	commas := 0

	for i := 0; i < len(val); i++ {
		switch c := val[i]; c {
		case ' ', '(':
		case ',':
			commas++
			if commas > 1 {
				return 0, 0, fmt.Errorf("%w: shape %s has more than two dimensions", ErrMalformed, val)
			}
			if rows, err = parseDim(buf.String(), val); err != nil {
				return 0, 0, err
			}
			buf.Reset()
		case ')':
			if cols, err = parseDim(buf.String(), val); err != nil {
				return 0, 0, err
			}
			buf.Reset()
		default:
			buf.WriteByte(c)
		}
	}
	return rows, cols, nil
}

func parseDim(s, shape string) (int, error) {
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid dimension %q in shape %s", ErrMalformed, s, shape)
	}
	return n, nil
}
