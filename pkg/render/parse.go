package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/matzehuels/caseforge/pkg/graph"
)

// ParseEdgeList reads the "N M S" edge-list wire format back into a graph,
// returning the graph and the source vertex from the header. This is the
// inverse of [graph.WriteEdgeList] and lets the viz command work directly
// from stored corpus inputs.
func ParseEdgeList(r io.Reader) (graph.Graph, int, error) {
	br := bufio.NewReader(r)

	var n, m, source int
	if _, err := fmt.Fscan(br, &n, &m, &source); err != nil {
		return graph.Graph{}, 0, fmt.Errorf("parse header: %w", err)
	}

	g := graph.Graph{N: n, Edges: make([]graph.Edge, 0, m)}
	for i := 0; i < m; i++ {
		var from, to, weight int
		if _, err := fmt.Fscan(br, &from, &to, &weight); err != nil {
			return graph.Graph{}, 0, fmt.Errorf("parse edge %d: %w", i, err)
		}
		g.AddEdge(from, to, weight)
	}

	if err := g.Validate(); err != nil {
		return graph.Graph{}, 0, err
	}
	return g, source, nil
}
