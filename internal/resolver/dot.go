package resolver

import (
	"io"

	"github.com/emicklei/dot"
)

// WriteDOT renders a resolved Graph as a Graphviz DOT digraph (§6.4).
// Node labels are "<name> <version>"; edges carry no labels.
func WriteDOT(w io.Writer, g Graph) error {
	out := dot.NewGraph(dot.Directed)

	nodes := make([]dot.Node, len(g.Nodes))
	for i, p := range g.Nodes {
		nodes[i] = out.Node(p.String())
	}
	for _, e := range g.Edges {
		out.Edge(nodes[e[0]], nodes[e[1]])
	}

	_, err := io.WriteString(w, out.String())
	return err
}
