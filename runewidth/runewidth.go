// Package runewidth measures validated UTF-8 text for display: terminal
// cell width and grapheme cluster count.
package runewidth

import (
	"unicode/utf8"
	"unsafe"

	gorunewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Condition measures text under one East Asian width setting.
type Condition struct {
	cond *gorunewidth.Condition
}

var (
	narrow = newCondition(false)
	wide   = newCondition(true)
)

func newCondition(eastAsian bool) *Condition {
	c := gorunewidth.NewCondition()
	c.EastAsianWidth = eastAsian
	c.StrictEmojiNeutral = true
	return &Condition{cond: c}
}

// New returns the shared Condition for the given setting. When eastAsian
// is true, ambiguous-width characters count as two cells.
func New(eastAsian bool) *Condition {
	if eastAsian {
		return wide
	}
	return narrow
}

// RuneWidth returns the cell width of r, 0 for invalid runes.
func (c *Condition) RuneWidth(r rune) int {
	if !utf8.ValidRune(r) {
		return 0
	}
	return c.cond.RuneWidth(r)
}

// Width returns the cell width of p, which must be valid UTF-8. Each
// grapheme cluster is measured as a unit.
func (c *Condition) Width(p []byte) int {
	return c.cond.StringWidth(unsafe.String(unsafe.SliceData(p), len(p)))
}

// RuneWidth returns the narrow-context cell width of r.
func RuneWidth(r rune) int {
	return narrow.RuneWidth(r)
}

// StringWidth returns the narrow-context cell width of s.
func StringWidth(s string) int {
	return narrow.cond.StringWidth(s)
}

// GraphemeCount returns the number of extended grapheme clusters in p.
func GraphemeCount(p []byte) int {
	return uniseg.GraphemeClusterCount(unsafe.String(unsafe.SliceData(p), len(p)))
}
