package growstr

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bulga138/growstr/buffer"
)

// String is a growable string whose contents are always valid UTF-8.
//
// Every mutating method either succeeds completely or returns an error and
// leaves the String exactly as it was. The zero value is an empty String
// that allocates from the Go heap.
//
// A String is not safe for concurrent use; callers must serialize
// mutations and must not read while another goroutine mutates.
type String struct {
	buf       buffer.Buffer
	gen       uint64
	eastAsian bool
}

// --- Constructors ---

// New returns an empty String. It does not allocate storage.
func New(opts ...Option) *String {
	st := buildSettings(opts)
	return &String{
		buf:       *buffer.New(st.alloc, st.policy),
		eastAsian: st.eastAsian,
	}
}

// NewWithCapacity returns an empty String with room for at least n bytes.
func NewWithCapacity(n int, opts ...Option) (*String, error) {
	s := New(opts...)
	if err := s.buf.ReserveExact(n); err != nil {
		return nil, fmt.Errorf("new string with capacity %d: %w", n, err)
	}
	return s, nil
}

// FromBytes copies p into a new String. It fails with an *EncodingError if
// p is not well-formed UTF-8.
func FromBytes(p []byte, opts ...Option) (*String, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return fromValid(p, opts)
}

// FromString copies str into a new String, validating it first.
func FromString(str string, opts ...Option) (*String, error) {
	return FromBytes([]byte(str), opts...)
}

// FromRunes encodes rs as UTF-8. It fails if any rune is a surrogate or
// outside the Unicode range.
func FromRunes(rs []rune, opts ...Option) (*String, error) {
	size := 0
	for i, r := range rs {
		n := utf8.RuneLen(r)
		if n < 0 {
			return nil, fmt.Errorf("rune %d (%U): %w", i, r, ErrInvalidEncoding)
		}
		size += n
	}
	p := make([]byte, 0, size)
	for _, r := range rs {
		p = utf8.AppendRune(p, r)
	}
	return fromValid(p, opts)
}

func fromValid(p []byte, opts []Option) (*String, error) {
	s, err := NewWithCapacity(len(p), opts...)
	if err != nil {
		return nil, err
	}
	if err := s.buf.WriteAt(0, p); err != nil {
		if rerr := s.buf.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return nil, err
	}
	return s, nil
}

// Clone returns a copy of s that uses the same allocator and policy.
func (s *String) Clone() (*String, error) {
	return fromValid(s.buf.Bytes(), s.options())
}

// --- Reads ---

// Len returns the length in bytes.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return s.buf.Len()
}

// Cap returns the allocated capacity in bytes.
func (s *String) Cap() int {
	if s == nil {
		return 0
	}
	return s.buf.Cap()
}

// IsEmpty reports whether s has no bytes.
func (s *String) IsEmpty() bool { return s.Len() == 0 }

// CodepointCount returns the number of Unicode scalar values. It scans the
// whole string on every call.
func (s *String) CodepointCount() int {
	return utf8.RuneCount(s.buf.Bytes())
}

// ByteAt returns the raw byte at index i, which need not be a codepoint
// boundary.
func (s *String) ByteAt(i int) (byte, error) {
	p := s.buf.Bytes()
	if i < 0 || i >= len(p) {
		return 0, fmt.Errorf("byte %d of %d: %w", i, len(p), ErrOutOfBounds)
	}
	return p[i], nil
}

// Bytes returns the contents without copying. The slice must not be
// modified and is only valid until the next mutation of s.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf.Bytes()
}

// CopyBytes returns a copy of the contents.
func (s *String) CopyBytes() []byte {
	return bytes.Clone(s.Bytes())
}

// String returns the contents as a Go string (copied).
func (s *String) String() string {
	return string(s.Bytes())
}

// Runes decodes s into UTF-32.
func (s *String) Runes() []rune {
	return bytes.Runes(s.Bytes())
}

// Equal reports whether s and other hold identical bytes. No Unicode
// normalization is applied. A nil String equals an empty one.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// Compare orders s and other bytewise, returning -1, 0 or +1.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

// IsBoundary reports whether off is 0, Len(), or the start of a codepoint.
func (s *String) IsBoundary(off int) bool {
	return isBoundary(s.buf.Bytes(), off)
}

// View returns a View of the whole string.
func (s *String) View() View {
	return View{src: s, gen: s.gen, n: s.buf.Len()}
}

// Slice returns a zero-copy View of [start, end). Both offsets must be
// codepoint boundaries.
func (s *String) Slice(start, end int) (View, error) {
	if err := checkRange("slice", s.buf.Bytes(), start, end); err != nil {
		return View{}, err
	}
	return View{src: s, gen: s.gen, off: start, n: end - start}, nil
}

// Substring returns an owned copy of [start, end).
func (s *String) Substring(start, end int) (*String, error) {
	v, err := s.Slice(start, end)
	if err != nil {
		return nil, err
	}
	return v.Clone()
}

// Codepoints returns an iterator over the whole string.
func (s *String) Codepoints() *Iterator {
	return s.View().Codepoints()
}

// checkRange validates [start, end) against p.
func checkRange(op string, p []byte, start, end int) error {
	if start < 0 || end > len(p) || start > end {
		return fmt.Errorf("%s [%d, %d) of %d bytes: %w", op, start, end, len(p), ErrOutOfBounds)
	}
	if !isBoundary(p, start) {
		return &BoundaryError{Op: op, Offset: start}
	}
	if !isBoundary(p, end) {
		return &BoundaryError{Op: op, Offset: end}
	}
	return nil
}
