package regexlib

import (
	"strconv"
	"strings"
)

// sexpr renders n in the one-line notation (kind child ...), with
// characters written as Go rune literals: (seq (char 'a') (plus (char 'b'))).
func sexpr(n Node) string {
	var b strings.Builder
	writeSexpr(&b, n)
	return b.String()
}

func writeSexpr(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case nil:
		b.WriteString("()")
	case *Char:
		b.WriteString("(char ")
		b.WriteString(strconv.QuoteRune(t.C))
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		b.WriteString(n.Kind().String())
		for _, c := range Children(n) {
			b.WriteByte(' ')
			writeSexpr(b, c)
		}
		b.WriteByte(')')
	}
}
