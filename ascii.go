package growstr

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsASCII reports whether every byte is below 0x80.
func (s *String) IsASCII() bool {
	for _, c := range s.Bytes() {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// ToLowerASCII lowercases A-Z in place. Other bytes, including every byte
// of a multi-byte sequence, are left alone.
func (s *String) ToLowerASCII() {
	s.mapASCII('A', 'Z', 'a'-'A')
}

// ToUpperASCII uppercases a-z in place.
func (s *String) ToUpperASCII() {
	s.mapASCII('a', 'z', 'A'-'a')
}

func (s *String) mapASCII(lo, hi byte, delta int) {
	changed := false
	p := s.buf.Bytes()
	for i, c := range p {
		if c >= lo && c <= hi {
			p[i] = byte(int(c) + delta)
			changed = true
		}
	}
	if changed {
		s.touch()
	}
}

// ParseUint64ASCII parses s as an unsigned decimal number. Only the digits
// 0-9 are accepted.
func (s *String) ParseUint64ASCII() (uint64, error) {
	text := bytesToString(s.Bytes())
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, fmt.Errorf("parse %q: %w", text, ErrSyntax)
		}
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("parse %q: %w", text, ErrRange)
		}
		return 0, fmt.Errorf("parse %q: %w", text, ErrSyntax)
	}
	return n, nil
}

// CompareFoldASCII orders s and other bytewise after folding a-z to A-Z,
// returning -1, 0 or +1. Bytes outside a-z compare as they are.
func (s *String) CompareFoldASCII(other *String) int {
	a, b := s.Bytes(), other.Bytes()
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := upperASCII(a[i]), upperASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Reverse reverses the order of the codepoints in s.
func (s *String) Reverse() {
	s.ReverseRange(0, s.Len())
}

// ReverseRange reverses the order of the codepoints in [start, end). Each
// codepoint keeps its own byte order, so the result stays valid UTF-8.
func (s *String) ReverseRange(start, end int) error {
	p := s.buf.Bytes()
	if err := checkRange("reverse", p, start, end); err != nil {
		return err
	}
	seg := p[start:end]
	rev := make([]byte, 0, len(seg))
	for i := len(seg); i > 0; {
		_, size := utf8.DecodeLastRune(seg[:i])
		rev = append(rev, seg[i-size:i]...)
		i -= size
	}
	if bytes.Equal(rev, seg) {
		return nil
	}
	copy(seg, rev)
	s.touch()
	return nil
}

// --- Numbers ---

// AppendUint appends n in the given base, 2 to 36, using lowercase digits.
func (s *String) AppendUint(n uint64, base int) error {
	if base < 2 || base > 36 {
		return fmt.Errorf("append uint: base %d: %w", base, ErrRange)
	}
	var tmp [64]byte
	return s.splice("append", s.Len(), s.Len(), strconv.AppendUint(tmp[:0], n, base))
}

// AppendInt appends n in the given base, 2 to 36, with a leading '-' when
// negative.
func (s *String) AppendInt(n int64, base int) error {
	if base < 2 || base > 36 {
		return fmt.Errorf("append int: base %d: %w", base, ErrRange)
	}
	var tmp [65]byte
	return s.splice("append", s.Len(), s.Len(), strconv.AppendInt(tmp[:0], n, base))
}

// AppendFloat appends f formatted as by strconv.FormatFloat with bitSize
// 64. Use format 'g' and prec -1 for the shortest exact representation.
func (s *String) AppendFloat(f float64, format byte, prec int) error {
	if !strings.ContainsRune("beEfgGxX", rune(format)) {
		return fmt.Errorf("append float: format %q: %w", format, ErrSyntax)
	}
	var tmp [32]byte
	return s.splice("append", s.Len(), s.Len(), strconv.AppendFloat(tmp[:0], f, format, prec, 64))
}

// ParseFloat64ASCII parses s as a decimal or hexadecimal floating point
// number in the syntax strconv.ParseFloat accepts, including "inf" and
// "nan". Values too large for a float64 fail with ErrRange.
func (s *String) ParseFloat64ASCII() (float64, error) {
	text := bytesToString(s.Bytes())
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("parse %q: %w", text, ErrRange)
		}
		return 0, fmt.Errorf("parse %q: %w", text, ErrSyntax)
	}
	return f, nil
}
