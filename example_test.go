package relex_test

import (
	"fmt"

	"github.com/ava12/relex"
	"github.com/ava12/relex/pattern"
)

func Example() {
	input := "let x = 42\nprint x\n"
	patterns := pattern.Set{
		{Name: "space", Expr: `[ \t]+`},
		{Name: "nl", Expr: `\n`},
		{Name: "keyword", Expr: `let|print`},
		{Name: "name", Expr: `[a-z][a-z0-9]*`},
		{Name: "number", Expr: `\d+`},
		{Name: "op", Expr: `=`},
	}

	tokens, e := relex.Lex(input, patterns)
	if e != nil {
		fmt.Println(e)
		return
	}

	for _, t := range tokens {
		if t.Kind() == "space" || t.Kind() == "nl" {
			continue
		}
		fmt.Printf("%d:%d %s %q\n", t.Pos().Line, t.Pos().Col, t.Kind(), t.Text())
	}
	// Output:
	// 1:1 keyword "let"
	// 1:5 name "x"
	// 1:7 op "="
	// 1:9 number "42"
	// 2:1 keyword "print"
	// 2:7 name "x"
}
