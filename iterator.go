package growstr

import (
	"iter"
	"unicode/utf8"
)

// Codepoint is a decoded Unicode scalar value and the length of its UTF-8
// encoding.
type Codepoint struct {
	Value rune
	Size  int
}

// Iterator decodes codepoints from a String, a View or raw bytes.
//
// The cursor sits between codepoints. Next decodes the codepoint after the
// cursor and moves past it; Prev decodes the one before it and moves back.
// Iteration stops at either end of the range or on the first error, which
// Err reports:
//
//	it := s.Codepoints()
//	for it.Next() {
//		cp := it.Codepoint()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator struct {
	src *String // nil when iterating raw bytes
	gen uint64
	raw []byte

	start, end int
	pos        int

	cur    Codepoint
	curOff int
	err    error
}

// NewIterator returns an iterator over p, which has not been validated.
// Each sequence is checked as it is decoded and the first malformed one
// stops iteration with an *EncodingError.
func NewIterator(p []byte) *Iterator {
	return &Iterator{raw: p, end: len(p)}
}

func (it *Iterator) data() ([]byte, error) {
	if it.src == nil {
		return it.raw, nil
	}
	if it.src.gen != it.gen {
		return nil, ErrStaleView
	}
	return it.src.buf.Bytes(), nil
}

// Next advances over the next codepoint. It returns false at the end of
// the range or on error.
func (it *Iterator) Next() bool {
	if it.err != nil || it.pos >= it.end {
		return false
	}
	p, err := it.data()
	if err != nil {
		it.err = err
		return false
	}
	r, size := utf8.DecodeRune(p[it.pos:it.end])
	if r == utf8.RuneError && size <= 1 {
		it.err = &EncodingError{Offset: it.pos - it.start}
		return false
	}
	it.cur = Codepoint{Value: r, Size: size}
	it.curOff = it.pos - it.start
	it.pos += size
	return true
}

// Prev steps back over the codepoint before the cursor.
func (it *Iterator) Prev() bool {
	if it.err != nil || it.pos <= it.start {
		return false
	}
	p, err := it.data()
	if err != nil {
		it.err = err
		return false
	}
	r, size := utf8.DecodeLastRune(p[it.start:it.pos])
	if r == utf8.RuneError && size <= 1 {
		it.err = &EncodingError{Offset: it.pos - it.start - 1}
		return false
	}
	it.pos -= size
	it.cur = Codepoint{Value: r, Size: size}
	it.curOff = it.pos - it.start
	return true
}

// Codepoint returns the codepoint produced by the last successful Next or
// Prev.
func (it *Iterator) Codepoint() Codepoint { return it.cur }

// Offset returns the byte offset of the current codepoint, relative to the
// start of the iterated range.
func (it *Iterator) Offset() int { return it.curOff }

// Err returns the error that stopped iteration, if any.
func (it *Iterator) Err() error { return it.err }

// Reset moves the cursor back to the start and clears any decoding error.
// A stale iterator stays stale.
func (it *Iterator) Reset() {
	it.pos = it.start
	it.cur = Codepoint{}
	it.curOff = 0
	it.err = nil
}

// SeekEnd moves the cursor to the end, ready for backwards iteration.
func (it *Iterator) SeekEnd() {
	it.Reset()
	it.pos = it.end
}

// All yields the remaining codepoints with their offsets. Check Err after
// the loop.
func (it *Iterator) All() iter.Seq2[int, Codepoint] {
	return func(yield func(int, Codepoint) bool) {
		for it.Next() {
			if !yield(it.curOff, it.cur) {
				return
			}
		}
	}
}
