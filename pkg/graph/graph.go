package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTooManyEdges is returned by [RandomDAG] when the requested edge
	// count exceeds the maximum for a simple DAG on n vertices (n·(n-1)/2).
	// This is a configuration error and is rejected before any generation work.
	ErrTooManyEdges = errors.New("edge count exceeds simple DAG maximum")

	// ErrTooFewVertices is returned when a constructor is asked for a graph
	// with fewer than one vertex.
	ErrTooFewVertices = errors.New("vertex count must be at least 1")

	// ErrNegativeEdges is returned when a negative edge count is requested.
	ErrNegativeEdges = errors.New("edge count must be non-negative")

	// ErrInvalidWeight is returned when a weight limit is negative.
	ErrInvalidWeight = errors.New("weight limit must be non-negative")

	// ErrGraphHasCycle is returned by [TopoSort] when the input graph is not
	// acyclic. For graphs produced by [RandomDAG] this indicates a structural
	// invariant violation: generation must abort and never emit a corpus
	// built on the inconsistency.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Edge is a directed connection between two vertices, optionally weighted.
// Vertices are positional integer identifiers in [0, N).
type Edge struct {
	From   int
	To     int
	Weight int
}

// Graph is a set of N vertices plus an ordered edge list. Edge order is
// preserved because it is part of the emitted input format; correctness of
// the algorithms never depends on it.
//
// The zero value is an empty graph with no vertices.
type Graph struct {
	N     int
	Edges []Edge
}

// AddEdge appends an edge. Endpoints are not validated here; constructors
// only produce in-range endpoints and Validate checks imported graphs.
func (g *Graph) AddEdge(from, to, weight int) {
	g.Edges = append(g.Edges, Edge{From: from, To: to, Weight: weight})
}

// Validate checks that every edge references vertices in [0, N).
func (g *Graph) Validate() error {
	for _, e := range g.Edges {
		if e.From < 0 || e.From >= g.N || e.To < 0 || e.To >= g.N {
			return fmt.Errorf("edge %d->%d out of range [0,%d)", e.From, e.To, g.N)
		}
	}
	return nil
}

// Successors returns the adjacency list of the graph, indexed by vertex.
func (g *Graph) Successors() [][]int {
	adj := make([][]int, g.N)
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e.To)
	}
	return adj
}

// IsAcyclic reports whether the graph contains no directed cycle.
// Detection uses depth-first search with white/gray/black coloring and
// runs in O(N+E) time. Self-loops count as cycles.
func (g *Graph) IsAcyclic() bool {
	const (
		white = iota
		gray
		black
	)

	adj := g.Successors()
	color := make([]int, g.N)
	var hasCycle bool

	var dfs func(v int)
	dfs = func(v int) {
		color[v] = gray
		for _, next := range adj[v] {
			switch color[next] {
			case white:
				dfs(next)
				if hasCycle {
					return
				}
			case gray:
				hasCycle = true
				return
			}
		}
		color[v] = black
	}

	for v := 0; v < g.N; v++ {
		if color[v] == white {
			dfs(v)
			if hasCycle {
				return false
			}
		}
	}
	return true
}

// WriteEdgeList emits the graph in the line-oriented wire format consumed
// by graph tasks: a header line "N M S" followed by one "from to weight"
// line per edge, 0-based.
func WriteEdgeList(w io.Writer, g Graph, source int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", g.N, len(g.Edges), source); err != nil {
		return err
	}
	for _, e := range g.Edges {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	return bw.Flush()
}
