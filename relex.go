/*
Package relex is a regular-expression-driven tokenizer.

Consists of subpackages:
  - pattern: combines an ordered set of named regular expressions into a single matcher;
  - source: tracks positions (byte index, line, column) in source text;
  - lexer: splits a source string into tokens and reports lexical errors.

Typical usage is:

1. Describe tokens as an ordered pattern.Set, one named regular expression per
token kind. Order is significant: when several patterns could match at the same
position, the one listed first wins.

2. Call Lex with the source text and the set. The result is either the complete
token sequence or an error: *pattern.Error if the set itself is invalid,
*lexer.SyntaxError if some part of the input cannot be matched.

3. Inspect each token's kind name, matched text, and starting position.
*/
package relex

import (
	"github.com/ava12/relex/lexer"
	"github.com/ava12/relex/pattern"
)

// Lex splits src into tokens using an ordered pattern set.
// Every byte of src must belong to some token; tokenizing stops at the first
// position no pattern matches at and a *lexer.SyntaxError is returned instead
// of a partial sequence. An invalid pattern set yields a *pattern.Error before
// any scanning is done. Each call builds its own matcher, separate calls share
// no state.
func Lex(src string, set pattern.Set) ([]lexer.Token, error) {
	m, e := pattern.Combine(set)
	if e != nil {
		return nil, e
	}

	return lexer.New(m).Run(src)
}
