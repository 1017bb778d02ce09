package growstr

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// touch records a mutation, invalidating outstanding Views and Iterators.
func (s *String) touch() { s.gen++ }

// splice replaces [start, end) with p, which must be valid UTF-8. Storage
// is reserved before any byte moves, so a failed allocation leaves s
// untouched.
func (s *String) splice(op string, start, end int, p []byte) error {
	cur := s.buf.Bytes()
	if err := checkRange(op, cur, start, end); err != nil {
		return err
	}
	if start == end && len(p) == 0 {
		return nil
	}
	if overlaps(cur, p) {
		p = bytes.Clone(p)
	}

	n := len(cur)
	newLen := n - (end - start) + len(p)
	if err := s.buf.Reserve(newLen); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tail := n - end; tail > 0 && start+len(p) != end {
		if err := s.buf.Move(start+len(p), end, tail); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := s.buf.WriteAt(start, p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.buf.Truncate(newLen); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.touch()
	return nil
}

// --- Append ---

// Append appends other's contents. other may be s itself.
func (s *String) Append(other *String) error {
	return s.splice("append", s.Len(), s.Len(), other.Bytes())
}

// AppendView appends the bytes of v, which may be a view of s.
func (s *String) AppendView(v View) error {
	p, err := v.Bytes()
	if err != nil {
		return fmt.Errorf("append: %w", err)
	}
	return s.splice("append", s.Len(), s.Len(), p)
}

// AppendString validates str and appends it.
func (s *String) AppendString(str string) error {
	return s.AppendBytes([]byte(str))
}

// AppendBytes validates p and appends it.
func (s *String) AppendBytes(p []byte) error {
	if err := validate(p); err != nil {
		return fmt.Errorf("append: %w", err)
	}
	return s.splice("append", s.Len(), s.Len(), p)
}

// AppendRune appends the UTF-8 encoding of r.
func (s *String) AppendRune(r rune) error {
	if !utf8.ValidRune(r) {
		return fmt.Errorf("append %U: %w", r, ErrInvalidEncoding)
	}
	var tmp [utf8.UTFMax]byte
	return s.splice("append", s.Len(), s.Len(), utf8.AppendRune(tmp[:0], r))
}

// --- Insert ---

// Insert inserts other's contents at byte offset off, which must be a
// codepoint boundary.
func (s *String) Insert(off int, other *String) error {
	return s.splice("insert", off, off, other.Bytes())
}

// InsertString validates str and inserts it at off.
func (s *String) InsertString(off int, str string) error {
	return s.InsertBytes(off, []byte(str))
}

// InsertBytes validates p and inserts it at off.
func (s *String) InsertBytes(off int, p []byte) error {
	if err := validate(p); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return s.splice("insert", off, off, p)
}

// --- Remove and replace ---

// RemoveRange deletes [start, end). An empty range inside the string is a
// no-op wherever it falls.
func (s *String) RemoveRange(start, end int) error {
	if start == end && start >= 0 && start <= s.Len() {
		return nil
	}
	return s.splice("remove", start, end, nil)
}

// Replace substitutes str for [start, end).
func (s *String) Replace(start, end int, str string) error {
	p := []byte(str)
	if err := validate(p); err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	return s.splice("replace", start, end, p)
}

// Assign makes s a copy of other, keeping s's allocator and policy.
func (s *String) Assign(other *String) error {
	return s.splice("assign", 0, s.Len(), other.Bytes())
}

// Clear empties s but keeps its capacity for reuse.
func (s *String) Clear() {
	if s.buf.Len() == 0 {
		return
	}
	s.buf.Truncate(0)
	s.touch()
}

// --- Capacity ---

// Reserve ensures Cap() >= n.
func (s *String) Reserve(n int) error {
	before := s.buf.Cap()
	if err := s.buf.Reserve(n); err != nil {
		return fmt.Errorf("reserve: %w", err)
	}
	if s.buf.Cap() != before {
		s.touch()
	}
	return nil
}

// ShrinkToFit gives unused capacity back to the allocator.
func (s *String) ShrinkToFit() error {
	before := s.buf.Cap()
	if err := s.buf.ShrinkToFit(); err != nil {
		return fmt.Errorf("shrink: %w", err)
	}
	if s.buf.Cap() != before {
		s.touch()
	}
	return nil
}

// Release frees s's storage. s stays usable as an empty String; every
// View and Iterator taken from it becomes stale.
func (s *String) Release() error {
	if err := s.buf.Release(); err != nil {
		return err
	}
	s.touch()
	return nil
}
