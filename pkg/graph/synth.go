package graph

import (
	"fmt"

	"github.com/matzehuels/caseforge/pkg/sampler"
)

// RandomDAG synthesizes a simple directed acyclic graph on n vertices with
// up to m edges. No self-loops, no multi-edges.
//
// Acyclicity is guaranteed by construction: a random total order over the
// vertices is sampled first, and every edge is drawn consistent with it
// (lower rank -> higher rank). No cycle detection is needed afterwards.
//
// Exactly m edges are produced whenever the edge space leaves room for it;
// for dense requests collisions may exhaust the retry budget, in which case
// the result carries fewer edges. Callers must treat m as an upper bound.
//
// Returns ErrTooManyEdges if m exceeds n·(n-1)/2, the maximum for a simple
// DAG, before any generation work.
func RandomDAG(n, m int, s *sampler.Sampler) (Graph, error) {
	if n < 1 {
		return Graph{}, fmt.Errorf("RandomDAG(n=%d): %w", n, ErrTooFewVertices)
	}
	if m < 0 {
		return Graph{}, fmt.Errorf("RandomDAG(m=%d): %w", m, ErrNegativeEdges)
	}
	if max := n * (n - 1) / 2; m > max {
		return Graph{}, fmt.Errorf("RandomDAG(n=%d, m=%d): max %d: %w", n, m, max, ErrTooManyEdges)
	}

	rank := s.Perm(n) // hidden total order; rank[v] is v's position in it

	g := Graph{N: n}
	seen := make(map[[2]int]bool, m)

	// Each attempt draws an unordered pair and orients it by rank. The
	// budget keeps degenerate sizes (m close to the maximum) from looping
	// forever; callers tolerate a best-effort count there.
	budget := 20*m + 100
	for len(g.Edges) < m && budget > 0 {
		budget--
		u, err := s.IntRange(0, n-1)
		if err != nil {
			return Graph{}, err
		}
		v, err := s.IntRange(0, n-1)
		if err != nil {
			return Graph{}, err
		}
		if u == v {
			continue
		}
		if rank[u] > rank[v] {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		g.AddEdge(u, v, 0)
	}

	return g, nil
}
