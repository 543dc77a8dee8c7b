// Package pattern combines an ordered set of named regular expressions
// into a single matcher.
package pattern

import (
	"regexp"
	"strings"
)

// Pattern binds a token kind name to a regular expression describing the
// textual shape of that kind. Expr uses regexp/syntax (RE2) syntax; no flags
// or anchors are implied, but "." is made to match "\n" when the set is
// combined.
type Pattern struct {
	Name string
	Expr string
}

// Set is an ordered list of patterns. Order defines match priority: when
// several patterns could match at the same position, the one listed first
// wins. A Set is read-only for this package.
type Set []Pattern

// Matcher matches an alternation of all patterns of a set and reports which
// pattern produced the match. Each pattern is wrapped in its own capturing
// group, fragments are tried in set order. A Matcher is immutable and safe
// for concurrent use.
type Matcher struct {
	names  []string
	groups []int
	re     *regexp.Regexp
}

var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Combine validates a pattern set and builds a Matcher for it.
// Pattern names must be unique identifiers. Each expression must compile on
// its own and must not match the empty string, since a zero-length token
// would stall the lexer. Returns nil and *Error on the first violation found.
// Combining an empty set succeeds and yields a Matcher that never matches.
func Combine(set Set) (*Matcher, error) {
	m := &Matcher{
		names:  make([]string, len(set)),
		groups: make([]int, len(set)),
	}
	seen := make(map[string]bool, len(set))
	group := 1
	var b strings.Builder
	b.WriteString("^(?:")

	for i, p := range set {
		if !nameRe.MatchString(p.Name) {
			return nil, badNameError(p.Name)
		}
		if seen[p.Name] {
			return nil, duplicateNameError(p.Name)
		}
		seen[p.Name] = true

		re, e := regexp.Compile("(?s:" + p.Expr + ")")
		if e != nil {
			return nil, badRegexpError(p.Name, p.Expr, e)
		}
		if re.MatchString("") {
			return nil, emptyMatchError(p.Name, p.Expr)
		}

		m.names[i] = p.Name
		// fragments may contain capturing groups of their own,
		// skip those when assigning the next wrapping group index
		m.groups[i] = group
		group += re.NumSubexp() + 1

		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString("((?s:")
		b.WriteString(p.Expr)
		b.WriteString("))")
	}

	if len(set) == 0 {
		return m, nil
	}

	b.WriteByte(')')
	re, e := regexp.Compile(b.String())
	if e != nil {
		return nil, combineError(e)
	}

	m.re = re
	return m, nil
}

// MatchAt attempts one match at byte offset pos of src. The match must begin
// exactly at pos, src is never searched forward; zero-length matches are
// rejected. On success returns the name of the pattern that fired and the
// matched text, which is the substring of src starting at pos.
func (m *Matcher) MatchAt(src string, pos int) (kind, text string, found bool) {
	if m.re == nil {
		return "", "", false
	}

	match := m.re.FindStringSubmatchIndex(src[pos:])
	if match == nil || match[0] != 0 || match[1] <= match[0] {
		return "", "", false
	}

	for i, g := range m.groups {
		if match[2*g] >= 0 && match[2*g+1] >= 0 {
			return m.names[i], src[pos : pos+match[1]], true
		}
	}

	return "", "", false
}
