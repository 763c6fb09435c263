// Package notation reads and writes regexlib trees as s-expressions:
//
//	(seq (char 'a') (star (or (seq (char 'b')) (seq (char 'c')))))
//
// Characters are Go rune literals and ';' starts a comment.
package notation

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regexparse/regexlib"
)

type Expr struct {
	Pos  lexer.Position
	Head string  `parser:"'(' @Ident"`
	Char *string `parser:"@Char?"`
	Args []*Expr `parser:"@@* ')'"`
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Char", Pattern: `'(?:\\.|[^'\\])*'`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Expr](
	participle.Lexer(notationLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Read parses text into a tree. name is used in error positions.
func Read(name, text string) (regexlib.Node, error) {
	expr, err := parser.ParseString(name, text)
	if err != nil {
		return nil, err
	}
	return expr.Node()
}

// Node converts the parsed expression into a regexlib tree, checking heads
// and arities.
func (e *Expr) Node() (regexlib.Node, error) {
	if e.Head == "char" {
		if e.Char == nil || len(e.Args) > 0 {
			return nil, e.errorf("char takes exactly one character literal")
		}
		r, err := unquoteRune(*e.Char)
		if err != nil {
			return nil, e.errorf("bad character literal %s", *e.Char)
		}
		return &regexlib.Char{C: r}, nil
	}
	if e.Char != nil {
		return nil, e.errorf("%s does not take a character literal", e.Head)
	}

	kids := make([]regexlib.Node, len(e.Args))
	for i, a := range e.Args {
		n, err := a.Node()
		if err != nil {
			return nil, err
		}
		kids[i] = n
	}

	switch e.Head {
	case "plus", "star", "question":
		if len(kids) != 1 {
			return nil, e.errorf("%s takes one operand, got %d", e.Head, len(kids))
		}
		switch e.Head {
		case "plus":
			return &regexlib.Plus{Inner: kids[0]}, nil
		case "star":
			return &regexlib.Star{Inner: kids[0]}, nil
		}
		return &regexlib.Question{Inner: kids[0]}, nil
	case "or":
		if len(kids) != 2 {
			return nil, e.errorf("or takes two operands, got %d", len(kids))
		}
		return &regexlib.Or{Left: kids[0], Right: kids[1]}, nil
	case "seq":
		if len(kids) == 0 {
			return nil, e.errorf("seq must not be empty")
		}
		return &regexlib.Seq{Items: kids}, nil
	}
	return nil, e.errorf("unknown node %q", e.Head)
}

func (e *Expr) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %s", e.Pos, fmt.Sprintf(format, args...))
}

func unquoteRune(lit string) (rune, error) {
	if len(lit) < 3 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return 0, strconv.ErrSyntax
	}
	r, _, tail, err := strconv.UnquoteChar(lit[1:len(lit)-1], '\'')
	if err != nil {
		return 0, err
	}
	if tail != "" {
		return 0, strconv.ErrSyntax
	}
	return r, nil
}
