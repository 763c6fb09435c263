package notation

import (
	"bufio"
	"io"
	"strings"

	"regexparse/regexlib"
)

// Write renders n to w followed by a newline. With indent 0 the tree is
// written on one line, otherwise nodes with non-character children are
// broken over lines and nested by indent spaces.
func Write(w io.Writer, n regexlib.Node, indent int) error {
	bw := bufio.NewWriter(w)
	if indent <= 0 || n == nil {
		bw.WriteString(nodeString(n))
	} else {
		writeIndented(bw, n, strings.Repeat(" ", indent), 0)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func writeIndented(w *bufio.Writer, n regexlib.Node, unit string, level int) {
	kids := regexlib.Children(n)
	if flat(kids) {
		w.WriteString(n.String())
		return
	}
	w.WriteByte('(')
	w.WriteString(n.Kind().String())
	for _, k := range kids {
		w.WriteByte('\n')
		w.WriteString(strings.Repeat(unit, level+1))
		if k == nil {
			w.WriteString("()")
			continue
		}
		writeIndented(w, k, unit, level+1)
	}
	w.WriteByte(')')
}

// flat reports whether a node with these children fits on one line.
func flat(kids []regexlib.Node) bool {
	for _, k := range kids {
		if k != nil && k.Kind() != regexlib.KindChar {
			return false
		}
	}
	return true
}

func nodeString(n regexlib.Node) string {
	if n == nil {
		return "()"
	}
	return n.String()
}
