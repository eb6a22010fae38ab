package graph

import (
	"container/heap"
	"fmt"
)

// TopoSort computes a topological order of g using Kahn's algorithm.
// Ties between ready vertices are broken by lowest vertex id, so the order
// is deterministic for a given graph.
//
// Returns ErrGraphHasCycle if the algorithm cannot consume all N vertices,
// meaning the input was not acyclic. Callers that synthesized the graph as
// a DAG must treat this as a fatal structural-invariant violation.
func TopoSort(g Graph) ([]int, error) {
	indeg := make([]int, g.N)
	adj := g.Successors()
	for _, e := range g.Edges {
		indeg[e.To]++
	}

	ready := &intHeap{}
	for v := 0; v < g.N; v++ {
		if indeg[v] == 0 {
			heap.Push(ready, v)
		}
	}

	order := make([]int, 0, g.N)
	for ready.Len() > 0 {
		v := heap.Pop(ready).(int)
		order = append(order, v)
		for _, next := range adj[v] {
			indeg[next]--
			if indeg[next] == 0 {
				heap.Push(ready, next)
			}
		}
	}

	if len(order) != g.N {
		return nil, fmt.Errorf("topological sort consumed %d of %d vertices: %w",
			len(order), g.N, ErrGraphHasCycle)
	}
	return order, nil
}

// ReverseRankRelabel rewrites g under a reverse-rank label permutation:
// the vertex that is i-th in topological order becomes label N-1-i.
//
// Because original edges only go forward in topological rank, every
// rewritten edge (u', v') satisfies u' > v'. This holds for 100% of edges
// and is relied upon by downstream consumers as an adversarial property:
// a candidate cannot process vertices in increasing label order and hope
// to have seen every dependency already.
//
// Returns the topological order of the original graph, the permutation
// (old id -> new id), and the rewritten graph. Fails with ErrGraphHasCycle
// if g is not acyclic.
func ReverseRankRelabel(g Graph) (order, perm []int, relabeled Graph, err error) {
	order, err = TopoSort(g)
	if err != nil {
		return nil, nil, Graph{}, err
	}

	perm = make([]int, g.N)
	for i, v := range order {
		perm[v] = g.N - 1 - i
	}

	relabeled = Graph{N: g.N, Edges: make([]Edge, len(g.Edges))}
	for i, e := range g.Edges {
		relabeled.Edges[i] = Edge{From: perm[e.From], To: perm[e.To], Weight: e.Weight}
	}
	return order, perm, relabeled, nil
}

// intHeap is a min-heap of vertex ids used for deterministic tie-breaking.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
