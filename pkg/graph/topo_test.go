package graph

import (
	"errors"
	"testing"

	"github.com/matzehuels/caseforge/pkg/sampler"
)

func TestTopoSortValidOrder(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		g, err := RandomDAG(40, 100, sampler.New(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		order, err := TopoSort(g)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(order) != g.N {
			t.Fatalf("seed %d: order has %d vertices, want %d", seed, len(order), g.N)
		}

		pos := make([]int, g.N)
		for i, v := range order {
			pos[v] = i
		}
		for _, e := range g.Edges {
			if pos[e.From] >= pos[e.To] {
				t.Fatalf("seed %d: edge %d->%d violates order", seed, e.From, e.To)
			}
		}
	}
}

func TestTopoSortTieBreak(t *testing.T) {
	// Vertices 0..3 with a single edge 3->1: lowest ready id goes first.
	g := Graph{N: 4, Edges: []Edge{{From: 3, To: 1}}}
	order, err := TopoSort(g)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 2, 3, 1}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTopoSortRejectsCycle(t *testing.T) {
	g := Graph{N: 3, Edges: []Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}}
	if _, err := TopoSort(g); !errors.Is(err, ErrGraphHasCycle) {
		t.Fatalf("expected ErrGraphHasCycle, got %v", err)
	}
}

func TestReverseRankRelabelBijection(t *testing.T) {
	// The N=10, M=9 scenario: 10 distinct labels covering [0,9], still 9 edges.
	g, err := RandomDAG(10, 9, sampler.New(1))
	if err != nil {
		t.Fatal(err)
	}
	_, perm, relabeled, err := ReverseRankRelabel(g)
	if err != nil {
		t.Fatal(err)
	}

	seen := make([]bool, 10)
	for _, newID := range perm {
		if newID < 0 || newID > 9 || seen[newID] {
			t.Fatalf("perm is not a bijection onto [0,10): %v", perm)
		}
		seen[newID] = true
	}
	if len(relabeled.Edges) != len(g.Edges) {
		t.Fatalf("relabeled graph has %d edges, want %d", len(relabeled.Edges), len(g.Edges))
	}
}

func TestReverseRankProperty(t *testing.T) {
	// Every rewritten edge must go from a higher label to a lower one,
	// for 100% of edges, across seeds and sizes.
	tests := []struct{ n, m int }{
		{10, 9}, {10, 20}, {50, 200}, {200, 1000},
	}
	for _, tt := range tests {
		for seed := uint64(1); seed <= 10; seed++ {
			g, err := RandomDAG(tt.n, tt.m, sampler.New(seed))
			if err != nil {
				t.Fatalf("n=%d m=%d seed %d: %v", tt.n, tt.m, seed, err)
			}
			_, _, relabeled, err := ReverseRankRelabel(g)
			if err != nil {
				t.Fatalf("n=%d m=%d seed %d: %v", tt.n, tt.m, seed, err)
			}
			for _, e := range relabeled.Edges {
				if e.From <= e.To {
					t.Fatalf("n=%d m=%d seed %d: edge %d->%d breaks reverse-rank property",
						tt.n, tt.m, seed, e.From, e.To)
				}
			}
		}
	}
}

func TestRelabelPreservesAcyclicity(t *testing.T) {
	g, err := RandomDAG(30, 80, sampler.New(5))
	if err != nil {
		t.Fatal(err)
	}
	_, _, relabeled, err := ReverseRankRelabel(g)
	if err != nil {
		t.Fatal(err)
	}
	if !relabeled.IsAcyclic() {
		t.Fatal("relabeling introduced a cycle")
	}
}
