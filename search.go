package growstr

import "bytes"

// Byte-offset searches. Each returns -1 when nothing matches.

// IndexByte returns the offset of the first c.
func (s *String) IndexByte(c byte) int {
	return bytes.IndexByte(s.Bytes(), c)
}

// LastIndexByte returns the offset of the last c.
func (s *String) LastIndexByte(c byte) int {
	return bytes.LastIndexByte(s.Bytes(), c)
}

// IndexRune returns the offset of the first r.
func (s *String) IndexRune(r rune) int {
	return bytes.IndexRune(s.Bytes(), r)
}

// Index returns the offset of the first sub.
func (s *String) Index(sub string) int {
	return bytes.Index(s.Bytes(), []byte(sub))
}

// LastIndex returns the offset of the last sub.
func (s *String) LastIndex(sub string) int {
	return bytes.LastIndex(s.Bytes(), []byte(sub))
}

// Contains reports whether sub occurs in s.
func (s *String) Contains(sub string) bool {
	return s.Index(sub) >= 0
}

// HasPrefix reports whether s begins with prefix.
func (s *String) HasPrefix(prefix string) bool {
	return bytes.HasPrefix(s.Bytes(), []byte(prefix))
}

// HasSuffix reports whether s ends with suffix.
func (s *String) HasSuffix(suffix string) bool {
	return bytes.HasSuffix(s.Bytes(), []byte(suffix))
}
