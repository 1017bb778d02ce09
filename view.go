package growstr

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/bulga138/growstr/runewidth"
)

// View is a read-only window onto a String's bytes. It does not own or
// copy them and does not keep the String alive.
//
// A View is valid until its source is next mutated or released; after
// that every data-reading method returns ErrStaleView. The zero View is
// empty and always valid.
type View struct {
	src    *String
	gen    uint64
	off, n int
}

func (v View) bytes() ([]byte, error) {
	if v.src == nil {
		return nil, nil
	}
	if v.src.gen != v.gen {
		return nil, ErrStaleView
	}
	return v.src.buf.Bytes()[v.off : v.off+v.n], nil
}

// Len returns the view's length in bytes.
func (v View) Len() int { return v.n }

// Offset returns the view's start within its source.
func (v View) Offset() int { return v.off }

// Err returns ErrStaleView if the source has changed, otherwise nil.
func (v View) Err() error {
	_, err := v.bytes()
	return err
}

// Valid reports whether the view can still be read.
func (v View) Valid() bool { return v.Err() == nil }

// Bytes returns the viewed bytes without copying. The slice must not be
// modified.
func (v View) Bytes() ([]byte, error) {
	return v.bytes()
}

// String returns a copy of the viewed text, or "" if the view is stale.
func (v View) String() string {
	p, err := v.bytes()
	if err != nil {
		return ""
	}
	return string(p)
}

// ByteAt returns the raw byte at index i of the view.
func (v View) ByteAt(i int) (byte, error) {
	p, err := v.bytes()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(p) {
		return 0, fmt.Errorf("byte %d of %d: %w", i, len(p), ErrOutOfBounds)
	}
	return p[i], nil
}

// Slice returns a sub-view of [start, end), relative to v.
func (v View) Slice(start, end int) (View, error) {
	p, err := v.bytes()
	if err != nil {
		return View{}, err
	}
	if err := checkRange("slice", p, start, end); err != nil {
		return View{}, err
	}
	return View{src: v.src, gen: v.gen, off: v.off + start, n: end - start}, nil
}

// Clone copies the viewed text into a new String configured like the
// source.
func (v View) Clone() (*String, error) {
	p, err := v.bytes()
	if err != nil {
		return nil, err
	}
	if v.src == nil {
		return New(), nil
	}
	return fromValid(p, v.src.options())
}

// Codepoints returns an iterator over the view. The iterator reports
// ErrStaleView if the source changes during iteration.
func (v View) Codepoints() *Iterator {
	return &Iterator{src: v.src, gen: v.gen, start: v.off, end: v.off + v.n, pos: v.off}
}

// CodepointCount returns the number of Unicode scalar values in the view.
func (v View) CodepointCount() (int, error) {
	p, err := v.bytes()
	if err != nil {
		return 0, err
	}
	return utf8.RuneCount(p), nil
}

// Equal reports whether v and other hold identical bytes.
func (v View) Equal(other View) (bool, error) {
	a, b, err := bothBytes(v, other)
	if err != nil {
		return false, err
	}
	return bytes.Equal(a, b), nil
}

// Compare orders v and other bytewise.
func (v View) Compare(other View) (int, error) {
	a, b, err := bothBytes(v, other)
	if err != nil {
		return 0, err
	}
	return bytes.Compare(a, b), nil
}

func bothBytes(v, other View) ([]byte, []byte, error) {
	a, err := v.bytes()
	if err != nil {
		return nil, nil, err
	}
	b, err := other.bytes()
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// HasPrefix reports whether the view begins with prefix.
func (v View) HasPrefix(prefix string) (bool, error) {
	p, err := v.bytes()
	if err != nil {
		return false, err
	}
	return bytes.HasPrefix(p, []byte(prefix)), nil
}

// HasSuffix reports whether the view ends with suffix.
func (v View) HasSuffix(suffix string) (bool, error) {
	p, err := v.bytes()
	if err != nil {
		return false, err
	}
	return bytes.HasSuffix(p, []byte(suffix)), nil
}

// Index returns the byte offset of the first sub in the view, or -1.
func (v View) Index(sub string) (int, error) {
	p, err := v.bytes()
	if err != nil {
		return 0, err
	}
	return bytes.Index(p, []byte(sub)), nil
}

// Width returns the number of terminal cells the view occupies.
func (v View) Width() (int, error) {
	p, err := v.bytes()
	if err != nil {
		return 0, err
	}
	eastAsian := v.src != nil && v.src.eastAsian
	return runewidth.New(eastAsian).Width(p), nil
}
