package task

import (
	"bytes"
	"container/heap"
	"fmt"
	"strings"

	"github.com/matzehuels/caseforge/pkg/corpus"
	"github.com/matzehuels/caseforge/pkg/graph"
	"github.com/matzehuels/caseforge/pkg/sampler"
)

// Unreachable is the distance sentinel emitted for vertices the source
// cannot reach. Candidates initialize distances to this value, so the
// reference output uses it verbatim rather than a symbolic marker.
const Unreachable = 2147483647

// Shortest synthesizes weighted digraphs and expects single-source shortest
// distances from vertex 0.
//
// Input: "n m 0" header, then m lines "from to weight". Expected: one line
// of n space-separated distances. The last two case tiers switch from
// uniform random graphs to the ladder adversary, which degrades
// label-correcting (SPFA-family) candidates to their worst case while
// leaving the answer unchanged for any correct algorithm.
var Shortest = &Task{
	Name:    "shortest",
	Summary: "single-source shortest distances on a weighted digraph",
	Cases:   25,
	Generate: func(idx int, s *sampler.Sampler) (corpus.Case, error) {
		var n, m, w int
		worstCase := false
		switch {
		case idx < 5:
			n, m, w = 10, 9, 10
		case idx < 10:
			n, m, w = 10, 10, 10
		case idx < 15:
			n, m, w = 10, 20, 10
		case idx < 20:
			n, m, w = 1000, 5000, 1000
		case idx < 24:
			n, m, w = 10000, 500000, 1000
		default:
			n, w = 10000, 1000
			worstCase = true
		}

		var g graph.Graph
		var err error
		if worstCase {
			// Edge count is dictated by the adversarial topology, not requested.
			g, err = graph.LadderAdversary{}.Build(n, w, s)
		} else {
			g, err = graph.RandomWeighted(n, m, w, s)
		}
		if err != nil {
			return corpus.Case{}, err
		}

		var input bytes.Buffer
		if err := graph.WriteEdgeList(&input, g, 0); err != nil {
			return corpus.Case{}, err
		}

		dist := dijkstra(g, 0)
		parts := make([]string, len(dist))
		for i, d := range dist {
			parts[i] = fmt.Sprintf("%d", d)
		}

		return corpus.Case{
			Input:    input.Bytes(),
			Expected: []byte(strings.Join(parts, " ") + "\n"),
		}, nil
	},
}

// dijkstra is the reference shortest-path computation. It is independent of
// the algorithm family under test: the adversarial inputs punish
// label-correcting candidates, while the reference answer comes from a
// label-setting algorithm that those inputs cannot slow down.
func dijkstra(g graph.Graph, source int) []int {
	type adjEdge struct{ to, weight int }
	adj := make([][]adjEdge, g.N)
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], adjEdge{to: e.To, weight: e.Weight})
	}

	dist := make([]int, g.N)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[source] = 0

	pq := &distHeap{{v: source, d: 0}}
	visited := make([]bool, g.N)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		if visited[item.v] {
			continue
		}
		visited[item.v] = true
		for _, e := range adj[item.v] {
			if nd := dist[item.v] + e.weight; nd < dist[e.to] {
				dist[e.to] = nd
				heap.Push(pq, distItem{v: e.to, d: nd})
			}
		}
	}
	return dist
}

type distItem struct{ v, d int }

type distHeap []distItem

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].d < h[j].d }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)        { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
