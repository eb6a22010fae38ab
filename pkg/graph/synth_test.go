package graph

import (
	"errors"
	"testing"

	"github.com/matzehuels/caseforge/pkg/sampler"
)

func TestRandomDAGIsAcyclic(t *testing.T) {
	tests := []struct {
		name string
		n, m int
	}{
		{"tree-like", 10, 9},
		{"one extra edge", 10, 10},
		{"dense small", 10, 20},
		{"single vertex", 1, 0},
		{"medium", 100, 300},
		{"large sparse", 1000, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 20; seed++ {
				g, err := RandomDAG(tt.n, tt.m, sampler.New(seed))
				if err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
				if g.N != tt.n {
					t.Fatalf("seed %d: got %d vertices, want %d", seed, g.N, tt.n)
				}
				if !g.IsAcyclic() {
					t.Fatalf("seed %d: graph has a cycle", seed)
				}
				if err := g.Validate(); err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
			}
		})
	}
}

func TestRandomDAGEdgeCount(t *testing.T) {
	// Away from the density ceiling the requested count is hit exactly.
	g, err := RandomDAG(10, 9, sampler.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Edges) != 9 {
		t.Fatalf("got %d edges, want 9", len(g.Edges))
	}
}

func TestRandomDAGSimple(t *testing.T) {
	g, err := RandomDAG(10, 20, sampler.New(3))
	if err != nil {
		t.Fatal(err)
	}
	seen := map[[2]int]bool{}
	for _, e := range g.Edges {
		if e.From == e.To {
			t.Fatalf("self-loop %d->%d", e.From, e.To)
		}
		key := [2]int{e.From, e.To}
		if seen[key] {
			t.Fatalf("duplicate edge %d->%d", e.From, e.To)
		}
		seen[key] = true
	}
}

func TestRandomDAGRejectsInfeasible(t *testing.T) {
	// n=10 allows at most 45 simple DAG edges.
	if _, err := RandomDAG(10, 46, sampler.New(1)); !errors.Is(err, ErrTooManyEdges) {
		t.Fatalf("expected ErrTooManyEdges, got %v", err)
	}
	if _, err := RandomDAG(0, 0, sampler.New(1)); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
	if _, err := RandomDAG(5, -1, sampler.New(1)); !errors.Is(err, ErrNegativeEdges) {
		t.Fatalf("expected ErrNegativeEdges, got %v", err)
	}
}

func TestRandomDAGDeterministic(t *testing.T) {
	a, err := RandomDAG(50, 120, sampler.New(99))
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomDAG(50, 120, sampler.New(99))
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Edges) != len(b.Edges) {
		t.Fatalf("edge counts differ: %d vs %d", len(a.Edges), len(b.Edges))
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			t.Fatalf("edge %d differs: %v vs %v", i, a.Edges[i], b.Edges[i])
		}
	}
}

func TestIsAcyclicDetectsCycles(t *testing.T) {
	tests := []struct {
		name string
		g    Graph
		want bool
	}{
		{"empty", Graph{N: 3}, true},
		{"chain", Graph{N: 3, Edges: []Edge{{From: 0, To: 1}, {From: 1, To: 2}}}, true},
		{"self-loop", Graph{N: 2, Edges: []Edge{{From: 1, To: 1}}}, false},
		{"two-cycle", Graph{N: 2, Edges: []Edge{{From: 0, To: 1}, {From: 1, To: 0}}}, false},
		{"long cycle", Graph{N: 4, Edges: []Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}}}, false},
		{"diamond", Graph{N: 4, Edges: []Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.IsAcyclic(); got != tt.want {
				t.Errorf("IsAcyclic() = %v, want %v", got, tt.want)
			}
		})
	}
}
