package graph

import (
	"fmt"

	"github.com/matzehuels/caseforge/pkg/sampler"
)

// RandomWeighted draws m edges independently: uniform source, destination
// and weight in [0, w]. Self-loops and multi-edges are permitted; tasks
// that forbid them must use a different constructor.
func RandomWeighted(n, m, w int, s *sampler.Sampler) (Graph, error) {
	if n < 1 {
		return Graph{}, fmt.Errorf("RandomWeighted(n=%d): %w", n, ErrTooFewVertices)
	}
	if m < 0 {
		return Graph{}, fmt.Errorf("RandomWeighted(m=%d): %w", m, ErrNegativeEdges)
	}
	if w < 0 {
		return Graph{}, fmt.Errorf("RandomWeighted(w=%d): %w", w, ErrInvalidWeight)
	}

	g := Graph{N: n, Edges: make([]Edge, 0, m)}
	for i := 0; i < m; i++ {
		from, err := s.IntRange(0, n-1)
		if err != nil {
			return Graph{}, err
		}
		to, err := s.IntRange(0, n-1)
		if err != nil {
			return Graph{}, err
		}
		weight, err := s.IntRange(0, w)
		if err != nil {
			return Graph{}, err
		}
		g.AddEdge(from, to, weight)
	}
	return g, nil
}

// Adversary builds a weighted graph shaped to maximize the work done by a
// specific algorithm family under test. The worst case is algorithm-specific,
// so strategies are pluggable rather than hard-coded; the edge count is
// determined by the topology itself and reported via the returned Graph.
type Adversary interface {
	// Name identifies the strategy in logs and manifests.
	Name() string
	// Build returns a graph on n vertices with weights bounded by w.
	Build(n, w int, s *sampler.Sampler) (Graph, error)
}

// LadderAdversary constructs the classic killer input for label-correcting
// shortest-path algorithms of the Bellman-Ford/SPFA family: two parallel
// chains of cheap edges joined by expensive rungs, plus a few random long
// edges. Each rung offers an apparent shortcut that later chain relaxations
// invalidate, forcing vertices back onto the work queue round after round —
// Ω(N) relaxation rounds overall.
type LadderAdversary struct {
	// ExtraEdges is the number of random long edges added on top of the
	// ladder. Defaults to 2 when zero, matching the historical shape.
	ExtraEdges int
}

// Name implements Adversary.
func (LadderAdversary) Name() string { return "ladder" }

// Build implements Adversary. Chain edges get small weights in [1, min(10, w)];
// rung and extra edges draw from the full [1, w] range.
func (a LadderAdversary) Build(n, w int, s *sampler.Sampler) (Graph, error) {
	if n < 2 {
		return Graph{}, fmt.Errorf("LadderAdversary(n=%d): %w", n, ErrTooFewVertices)
	}
	if w < 1 {
		return Graph{}, fmt.Errorf("LadderAdversary(w=%d): %w", w, ErrInvalidWeight)
	}

	small := w
	if small > 10 {
		small = 10
	}

	half := n / 2
	g := Graph{N: n}

	// Two parallel chains: 0..half-1 and half..2*half-1.
	for i := 0; i < half-1; i++ {
		cw, err := s.IntRange(1, small)
		if err != nil {
			return Graph{}, err
		}
		g.AddEdge(i, i+1, cw)

		cw, err = s.IntRange(1, small)
		if err != nil {
			return Graph{}, err
		}
		g.AddEdge(half+i, half+i+1, cw)
	}

	// Rungs between the chains.
	for i := 0; i < half; i++ {
		rw, err := s.IntRange(1, w)
		if err != nil {
			return Graph{}, err
		}
		g.AddEdge(i, half+i, rw)
	}

	extra := a.ExtraEdges
	if extra == 0 {
		extra = 2
	}
	for i := 0; i < extra; i++ {
		from, err := s.IntRange(0, n-1)
		if err != nil {
			return Graph{}, err
		}
		to, err := s.IntRange(0, n-1)
		if err != nil {
			return Graph{}, err
		}
		ew, err := s.IntRange(1, w)
		if err != nil {
			return Graph{}, err
		}
		g.AddEdge(from, to, ew)
	}

	return g, nil
}
