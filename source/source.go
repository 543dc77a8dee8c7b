// Package source tracks positions in source text.
package source

import (
	"strings"
	"unicode/utf8"
)

// Pos identifies a position in source text.
// Index is a 0-based byte offset, the unit regexp match offsets and string
// slicing use. Line and Col are 1-based; columns are counted in runes.
// Pos is a value, a position is never modified, only derived.
type Pos struct {
	Index int
	Line  int
	Col   int
}

// StartPos returns the position of the first character of any source text.
func StartPos() Pos {
	return Pos{0, 1, 1}
}

// Advance returns the position immediately following text consumed at p.
func Advance(p Pos, text string) Pos {
	next := Pos{p.Index + len(text), p.Line, p.Col}
	nl := strings.Count(text, "\n")
	if nl == 0 {
		next.Col += utf8.RuneCountInString(text)
		return next
	}

	last := strings.LastIndexByte(text, '\n')
	next.Line += nl
	next.Col = utf8.RuneCountInString(text[last+1:]) + 1
	return next
}

// LineAt returns the full text of the line containing the given byte offset,
// without the trailing newline. Offsets outside src are clamped.
func LineAt(src string, index int) string {
	if index < 0 {
		index = 0
	} else if index > len(src) {
		index = len(src)
	}

	start := strings.LastIndexByte(src[:index], '\n') + 1
	end := strings.IndexByte(src[index:], '\n')
	if end < 0 {
		return src[start:]
	}

	return src[start : index+end]
}
