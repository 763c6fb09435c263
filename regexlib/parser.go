package regexlib

import "fmt"

// Parse converts pattern into an AST in a single left-to-right pass.
//
// The grammar is literal characters, concatenation by juxtaposition,
// alternation with '|', grouping with '(' and ')', the postfix quantifiers
// '+', '*' and '?', and a backslash escape that turns one of the
// metacharacters \ + * ? | ( ) into a literal.
//
// A pattern without alternation at its top level comes back as a *Seq.
// Every failure is a *Error; Parse never panics.
func Parse(pattern string) (Node, error) {
	p := newParser(pattern)
	return p.parse()
}

// MustParse is like Parse but panics if the pattern is invalid.
func MustParse(pattern string) Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(fmt.Sprintf("regexlib: Parse(%q): %v", pattern, err))
	}
	return n
}

type mode int

const (
	modeNormal mode = iota
	modeEscapePending
)

// scope is the accumulator pair of one nesting level.
type scope struct {
	seq []Node // concatenation so far
	alt []Node // finished alternatives waiting for the fold
}

type parser struct {
	lex *lexer
	scope
	groups []scope // saved outer scopes, one per unclosed '('
	mode   mode
}

func newParser(pat string) *parser {
	return &parser{lex: newLexer(pat)}
}

func (p *parser) parse() (Node, error) {
	for tok := p.lex.next(); tok.typ != tEOF; tok = p.lex.next() {
		if err := p.step(tok); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

func (p *parser) step(tok token) error {
	if p.mode == modeEscapePending {
		p.mode = modeNormal
		n, err := escape(tok.pos, tok.ch)
		if err != nil {
			return err
		}
		p.seq = append(p.seq, n)
		return nil
	}

	switch tok.typ {
	case tPlus:
		return p.quantify(KindPlus, tok.pos)
	case tStar:
		return p.quantify(KindStar, tok.pos)
	case tQMark:
		return p.quantify(KindQuestion, tok.pos)
	case tLParen:
		p.groups = append(p.groups, p.scope)
		p.scope = scope{}
	case tRParen:
		return p.closeGroup(tok.pos)
	case tUnion:
		if len(p.seq) == 0 {
			return errNoPrev(tok.pos)
		}
		p.alt = append(p.alt, &Seq{Items: p.seq})
		p.seq = nil
	case tBackslash:
		p.mode = modeEscapePending
	default:
		p.seq = append(p.seq, &Char{C: tok.ch})
	}
	return nil
}

// quantify replaces the last node of the current sequence with a
// quantifier of kind k wrapping it.
func (p *parser) quantify(k Kind, pos int) error {
	last := len(p.seq) - 1
	if last < 0 {
		return errNoPrev(pos)
	}
	p.seq[last] = quantify(k, p.seq[last])
	return nil
}

func (p *parser) closeGroup(pos int) error {
	top := len(p.groups) - 1
	if top < 0 {
		return errInvalidRightParen(pos)
	}
	outer := p.groups[top]
	p.groups = p.groups[:top]

	if len(p.seq) > 0 {
		p.alt = append(p.alt, &Seq{Items: p.seq})
	}
	// An empty group folds to nothing and leaves the outer sequence as is.
	if n := foldOr(p.alt); n != nil {
		outer.seq = append(outer.seq, n)
	}
	p.scope = outer
	return nil
}

func (p *parser) finish() (Node, error) {
	// A backslash at the very end has nothing to escape and is dropped.
	if len(p.groups) > 0 {
		return nil, errNoRightParen()
	}
	if len(p.seq) > 0 {
		p.alt = append(p.alt, &Seq{Items: p.seq})
	}
	n := foldOr(p.alt)
	if n == nil {
		return nil, errEmpty()
	}
	return n, nil
}

// escape resolves the character following a backslash.
func escape(pos int, c rune) (Node, error) {
	if !IsMeta(c) {
		return nil, errInvalidEscape(pos, c)
	}
	return &Char{C: c}, nil
}

// foldOr nests alternatives to the right: [a, b, c] becomes
// Or(a, Or(b, c)). A single alternative is returned unchanged and an empty
// list yields nil.
func foldOr(alts []Node) Node {
	if len(alts) == 0 {
		return nil
	}
	n := alts[len(alts)-1]
	for i := len(alts) - 2; i >= 0; i-- {
		n = &Or{Left: alts[i], Right: n}
	}
	return n
}
