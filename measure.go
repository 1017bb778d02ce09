package growstr

import "github.com/bulga138/growstr/runewidth"

// Width returns the number of terminal cells needed to display s.
func (s *String) Width() int {
	return runewidth.New(s.eastAsian).Width(s.Bytes())
}

// GraphemeCount returns the number of user-perceived characters
// (extended grapheme clusters).
func (s *String) GraphemeCount() int {
	return runewidth.GraphemeCount(s.Bytes())
}
