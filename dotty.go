package scapegoat

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

type nodeids[T constraints.Ordered] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T constraints.Ordered]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes which violate α-weight-balance are
// highlighted.
func ToDot[T constraints.Ordered](t *Tree[T], w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("strict digraph {\n")
	ew.printf("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	hl := make(map[T]bool)
	for _, v := range t.AlphaViolations() {
		hl[v] = true
	}
	nodelist, edgelist := "", ""
	nilid := 10000
	for _, n := range t.preOrderNodes() {
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", ID, n.value, nodeDotStyles(n.IsLeaf(), hl[n.value]))
		for _, child := range []*Node[T]{n.left, n.right} {
			if child == nil {
				if !n.IsLeaf() {
					nilid++
					nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				}
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
	}
	ew.printf("%s", nodelist)
	ew.printf("%s", edgelist)
	ew.printf("}\n")
	if ew.err != nil {
		tracer().Errorf("tree DOT: %s", ew.err.Error())
	}
	return ew.err
}

// preOrderNodes lists the nodes of t in pre-order.
func (t *Tree[T]) preOrderNodes() []*Node[T] {
	nodes := []*Node[T]{}
	if t.IsEmpty() {
		return nodes
	}
	st := []*Node[T]{t.root}
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		nodes = append(nodes, n)
		if n.right != nil {
			st = append(st, n.right)
		}
		if n.left != nil {
			st = append(st, n.left)
		}
	}
	return nodes
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolor)
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolor)
	}
	return s
}

const (
	hexhlcolor = "#FF9944"
	hexcolor   = "#a3d7e4"
)

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
