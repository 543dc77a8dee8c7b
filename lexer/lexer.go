// Package lexer defines lexical analyzer driving a pattern.Matcher over a
// source string.
package lexer

import (
	"fmt"
	"strings"

	"github.com/ava12/relex/pattern"
	"github.com/ava12/relex/source"
)

// UnknownTokenMsg is the message carried by a SyntaxError when no pattern
// matches at current position.
const UnknownTokenMsg = "Unknown token"

// SyntaxError indicates that some source position starts no known token.
// It carries enough context to render a precise diagnostic without the
// caller re-deriving it.
type SyntaxError struct {
	// Pos contains the position at which matching was attempted.
	Pos source.Pos

	// Source contains the entire source text being tokenized.
	Source string

	// Msg contains the bare failure description, without position information.
	Msg string
}

// Error formats the error as "line:col: msg" followed by the full offending
// source line and a caret marker aligned under the offending column.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s\n%s\n%s^",
		e.Pos.Line, e.Pos.Col, e.Msg,
		source.LineAt(e.Source, e.Pos.Index),
		strings.Repeat(" ", e.Pos.Col-1))
}

// Lexer splits a source string into tokens using a combined pattern matcher.
// Lexer is immutable and stateless, the same instance may be used on
// different sources by different goroutines.
type Lexer struct {
	matcher *pattern.Matcher
}

// New creates new Lexer.
func New(m *pattern.Matcher) *Lexer {
	return &Lexer{matcher: m}
}

// Run tokenizes src from the beginning to the end. Every byte of src must
// belong to some token: the first position no pattern matches at aborts the
// run with *SyntaxError and no tokens are returned. An empty source yields
// an empty sequence.
func (l *Lexer) Run(src string) ([]Token, error) {
	tokens := make([]Token, 0)
	pos := source.StartPos()
	for pos.Index < len(src) {
		kind, text, found := l.matcher.MatchAt(src, pos.Index)
		if !found {
			return nil, &SyntaxError{Pos: pos, Source: src, Msg: UnknownTokenMsg}
		}

		tokens = append(tokens, NewToken(kind, text, pos))
		pos = source.Advance(pos, text)
	}

	return tokens, nil
}
