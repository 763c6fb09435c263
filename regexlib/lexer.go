package regexlib

import (
	"unicode/utf8"
)

type tokenType int

const (
	tEOF       tokenType = iota
	tChar                // literal rune
	tLParen              // (
	tRParen              // )
	tStar                // *
	tPlus                // +
	tQMark               // ?
	tUnion               // |
	tBackslash           // \
)

// token carries the raw rune for every type so that an escaped
// metacharacter can be turned back into a literal.
type token struct {
	typ tokenType
	ch  rune
	pos int // rune index, not byte offset
}

type lexer struct {
	input string
	off   int // byte offset of the next rune
	pos   int // rune index of the next rune
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) next() token {
	if l.off >= len(l.input) {
		return token{typ: tEOF, pos: l.pos}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.off:])
	tok := token{typ: tChar, ch: r, pos: l.pos}
	l.off += size
	l.pos++
	switch r {
	case '(':
		tok.typ = tLParen
	case ')':
		tok.typ = tRParen
	case '*':
		tok.typ = tStar
	case '+':
		tok.typ = tPlus
	case '?':
		tok.typ = tQMark
	case '|':
		tok.typ = tUnion
	case '\\':
		tok.typ = tBackslash
	}
	return tok
}

// IsMeta reports whether r has syntactic meaning in a pattern and must be
// escaped to be matched literally.
func IsMeta(r rune) bool {
	switch r {
	case '\\', '+', '*', '?', '|', '(', ')':
		return true
	}
	return false
}
