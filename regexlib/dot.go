package regexlib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ExportDOT writes a Graphviz digraph of the tree rooted at n to w.
// Characters are boxes, operators are ellipses; Or edges are labelled
// L and R, Seq edges with the item index.
func ExportDOT(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph AST {")
	fmt.Fprintln(bw, "    node [fontname=monospace];")

	type item struct {
		n      Node
		id     int
		parent int
		edge   string
	}
	next := 0
	stack := []item{{n: n, id: next, parent: -1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n == nil {
			continue
		}

		label, shape := it.n.Kind().String(), "ellipse"
		if c, ok := it.n.(*Char); ok {
			label, shape = strconv.QuoteRune(c.C), "box"
		}
		fmt.Fprintf(bw, "    n%d [shape=%s, label=\"%s\"];\n", it.id, shape, dotEscaper.Replace(label))
		if it.parent >= 0 {
			if it.edge != "" {
				fmt.Fprintf(bw, "    n%d -> n%d [label=\"%s\"];\n", it.parent, it.id, it.edge)
			} else {
				fmt.Fprintf(bw, "    n%d -> n%d;\n", it.parent, it.id)
			}
		}

		kids := Children(it.n)
		ids := make([]int, len(kids))
		for i := range kids {
			next++
			ids[i] = next
		}
		for i := len(kids) - 1; i >= 0; i-- {
			edge := ""
			switch it.n.(type) {
			case *Or:
				edge = [2]string{"L", "R"}[i]
			case *Seq:
				edge = strconv.Itoa(i)
			}
			stack = append(stack, item{n: kids[i], id: ids[i], parent: it.id, edge: edge})
		}
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
