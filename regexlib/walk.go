package regexlib

// Walk visits n and its descendants in pre-order, left to right. fn gets
// each node with its depth (the root is 0); returning false skips the
// children of that node. Deep trees are walked with an explicit stack.
func Walk(n Node, fn func(n Node, depth int) bool) {
	type item struct {
		n     Node
		depth int
	}
	stack := []item{{n, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n == nil || !fn(it.n, it.depth) {
			continue
		}
		kids := Children(it.n)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{kids[i], it.depth + 1})
		}
	}
}

// Stats summarises the shape of a tree.
type Stats struct {
	Nodes        int // all nodes
	Depth        int // levels, 1 for a lone node
	Chars        int
	Alternations int // Or nodes
	Quantifiers  int // Plus, Star and Question nodes
}

// Measure collects Stats for n.
func Measure(n Node) Stats {
	var s Stats
	Walk(n, func(n Node, depth int) bool {
		s.Nodes++
		if depth+1 > s.Depth {
			s.Depth = depth + 1
		}
		switch n.Kind() {
		case KindChar:
			s.Chars++
		case KindOr:
			s.Alternations++
		case KindPlus, KindStar, KindQuestion:
			s.Quantifiers++
		}
		return true
	})
	return s
}
