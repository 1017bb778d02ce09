package growstr

import (
	"unicode/utf8"
	"unsafe"
)

// validate returns nil if p is well-formed UTF-8, otherwise an
// *EncodingError locating the first bad byte. utf8 rejects overlong forms,
// encoded surrogates and truncated sequences.
func validate(p []byte) error {
	if utf8.Valid(p) {
		return nil
	}
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return &EncodingError{Offset: i}
		}
		i += size
	}
	return &EncodingError{Offset: len(p)}
}

// isBoundary reports whether off starts a codepoint in valid UTF-8 p, or
// sits at either end.
func isBoundary(p []byte, off int) bool {
	if off == 0 || off == len(p) {
		return true
	}
	if off < 0 || off > len(p) {
		return false
	}
	return utf8.RuneStart(p[off])
}

// overlaps reports whether a and b share any backing memory.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return aStart < bStart+uintptr(len(b)) && bStart < aStart+uintptr(len(a))
}

// bytesToString converts without copying. The result must not outlive p or
// observe a later write to it.
func bytesToString(p []byte) string {
	return unsafe.String(unsafe.SliceData(p), len(p))
}
