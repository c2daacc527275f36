package rbtree

import (
	"fmt"
	"strconv"

	"github.com/emicklei/dot"
)

// Dot renders the tree as a Graphviz digraph for debugging. Red nodes are
// drawn red, edges are labelled "l" and "r". The output format is not stable.
func (t Tree[K, V]) Dot() string {
	graph := dot.NewGraph(dot.Directed)
	if t.root == nil {
		return graph.String()
	}

	var id int
	var traverse func(n *node[K, V], parent *dot.Node, direction string)
	traverse = func(n *node[K, V], parent *dot.Node, direction string) {
		current := graph.Node(strconv.Itoa(id)).
			Label(fmt.Sprintf("%v: %v (%d)", n.key, n.value, n.size)).
			Attr("color", n.color.String())
		id++
		if parent != nil {
			parent.Edge(current, direction)
		}
		if l := n.child[left]; l != nil {
			traverse(l, &current, "l")
		}
		if r := n.child[right]; r != nil {
			traverse(r, &current, "r")
		}
	}
	traverse(t.root, nil, "")

	return graph.String()
}
