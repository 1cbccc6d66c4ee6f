package aaset

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"

	"github.com/cosmos/iavl-bench/aaset/internal"
)

// RenderDotGraph writes the tree behind s in Graphviz dot format.
// Every node is labelled with its value and level; edges are labelled "l"
// or "r".
func RenderDotGraph[T any](writer io.Writer, s *Set[T]) error {
	graph := dot.NewGraph(dot.Directed)

	nodes := map[int]dot.Node{}
	err := internal.DebugTraverse(s.root, func(node *internal.Node[T], nodeId, parent int, direction string) error {
		label := fmt.Sprintf("%v L:%d", node.Value(), node.Level())
		n := graph.Node(fmt.Sprintf("n%d", nodeId)).Label(label)
		nodes[nodeId] = n
		if parent != 0 {
			graph.Edge(nodes[parent], n, direction)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(writer, graph.String())
	return err
}
