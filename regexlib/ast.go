package regexlib

import "reflect"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindChar Kind = iota + 1
	KindPlus
	KindStar
	KindQuestion
	KindOr
	KindSeq
)

var kindNames = [...]string{
	KindChar:     "char",
	KindPlus:     "plus",
	KindStar:     "star",
	KindQuestion: "question",
	KindOr:       "or",
	KindSeq:      "seq",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a node of the pattern AST. The set of implementations is closed:
// *Char, *Plus, *Star, *Question, *Or and *Seq.
type Node interface {
	Kind() Kind
	String() string
	node()
}

// Char matches exactly the rune C.
type Char struct{ C rune }

// Plus is one-or-more of Inner.
type Plus struct{ Inner Node }

// Star is zero-or-more of Inner.
type Star struct{ Inner Node }

// Question is zero-or-one of Inner.
type Question struct{ Inner Node }

// Or is a binary alternation. Longer alternations nest to the right.
type Or struct{ Left, Right Node }

// Seq is a non-empty concatenation.
type Seq struct{ Items []Node }

func (*Char) Kind() Kind     { return KindChar }
func (*Plus) Kind() Kind     { return KindPlus }
func (*Star) Kind() Kind     { return KindStar }
func (*Question) Kind() Kind { return KindQuestion }
func (*Or) Kind() Kind       { return KindOr }
func (*Seq) Kind() Kind      { return KindSeq }

func (*Char) node()     {}
func (*Plus) node()     {}
func (*Star) node()     {}
func (*Question) node() {}
func (*Or) node()       {}
func (*Seq) node()      {}

func (n *Char) String() string     { return sexpr(n) }
func (n *Plus) String() string     { return sexpr(n) }
func (n *Star) String() string     { return sexpr(n) }
func (n *Question) String() string { return sexpr(n) }
func (n *Or) String() string       { return sexpr(n) }
func (n *Seq) String() string      { return sexpr(n) }

// Children returns the direct sub-nodes of n in source order.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Plus:
		return []Node{t.Inner}
	case *Star:
		return []Node{t.Inner}
	case *Question:
		return []Node{t.Inner}
	case *Or:
		return []Node{t.Left, t.Right}
	case *Seq:
		return t.Items
	}
	return nil
}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b Node) bool { return reflect.DeepEqual(a, b) }

// quantify wraps inner in the quantifier variant named by k.
func quantify(k Kind, inner Node) Node {
	switch k {
	case KindPlus:
		return &Plus{Inner: inner}
	case KindStar:
		return &Star{Inner: inner}
	case KindQuestion:
		return &Question{Inner: inner}
	}
	panic("regexlib: not a quantifier: " + k.String())
}
