package regexlib

import (
	"strings"
)

// Pattern rebuilds pattern text from a tree. For trees produced by Parse the
// result parses back to an equal tree; metacharacters in Char nodes are
// escaped and nested sequences and alternations get parentheses.
func Pattern(n Node) string {
	var b strings.Builder
	writeBody(&b, n)
	return b.String()
}

// writeBody writes n where a whole alternation may appear unparenthesised:
// the top level or the inside of a group.
func writeBody(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case *Or:
		if _, ok := t.Left.(*Or); ok {
			writeGroup(b, t.Left)
		} else {
			writeBody(b, t.Left)
		}
		b.WriteByte('|')
		writeBody(b, t.Right)
	case *Seq:
		for _, it := range t.Items {
			writeItem(b, it)
		}
	default:
		writeItem(b, n)
	}
}

// writeItem writes n as one element of a concatenation.
func writeItem(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case *Char:
		b.WriteString(escapeRune(t.C))
	case *Plus:
		writeItem(b, t.Inner)
		b.WriteByte('+')
	case *Star:
		writeItem(b, t.Inner)
		b.WriteByte('*')
	case *Question:
		writeItem(b, t.Inner)
		b.WriteByte('?')
	case *Seq, *Or:
		writeGroup(b, n)
	}
}

func writeGroup(b *strings.Builder, n Node) {
	b.WriteByte('(')
	writeBody(b, n)
	b.WriteByte(')')
}

func escapeRune(r rune) string {
	if IsMeta(r) {
		return "\\" + string(r)
	}
	return string(r)
}
