package relex_test

import (
	"strings"
	"testing"

	"github.com/ava12/relex"
	"github.com/ava12/relex/internal/test"
	"github.com/ava12/relex/lexer"
	"github.com/ava12/relex/pattern"
)

var numberSet = pattern.Set{
	{Name: "num", Expr: `\d+`},
	{Name: "sep", Expr: `,`},
}

func TestLex(t *testing.T) {
	tokens, e := relex.Lex("1,23,456", numberSet)
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectInt(t, 5, len(tokens))

	kinds := make([]string, len(tokens))
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind()
		texts[i] = tok.Text()
	}
	test.ExpectString(t, "num sep num sep num", strings.Join(kinds, " "))
	test.ExpectString(t, "1,23,456", strings.Join(texts, ""))
}

func TestLexPatternError(t *testing.T) {
	tokens, e := relex.Lex("foo", pattern.Set{{Name: "bad", Expr: `(`}})
	test.Assert(t, tokens == nil, "expecting no tokens, got %v", tokens)
	test.ExpectErrorCode(t, pattern.BadRegexpError, e)
}

func TestLexSyntaxError(t *testing.T) {
	tokens, e := relex.Lex("1,2 3", numberSet)
	test.Assert(t, tokens == nil, "expecting no tokens, got %v", tokens)

	ee, valid := e.(*lexer.SyntaxError)
	test.Assert(t, valid, "expecting *lexer.SyntaxError, got %v", e)
	test.ExpectInt(t, 3, ee.Pos.Index)
	test.ExpectString(t, "1:4: Unknown token\n1,2 3\n   ^", e.Error())
}

func TestLexConcurrent(t *testing.T) {
	done := make(chan error)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_, e := relex.Lex("12,34", numberSet)
				if e != nil {
					done <- e
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if e := <-done; e != nil {
			t.Fatalf("unexpected error: %s", e.Error())
		}
	}
}
