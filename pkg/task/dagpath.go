package task

import (
	"fmt"
	"strings"

	"github.com/matzehuels/caseforge/pkg/corpus"
	"github.com/matzehuels/caseforge/pkg/graph"
	"github.com/matzehuels/caseforge/pkg/sampler"
)

// DagPath synthesizes a DAG, relabels it with the reverse-rank permutation,
// attaches a random value to every vertex, and expects the maximum value
// sum over paths starting at vertex n-1.
//
// Input: first line n; then one line per vertex label 0..n-1 holding the
// vertex value followed by its successor labels. The reverse-rank labeling
// guarantees every successor label is smaller than the vertex's own label,
// so a candidate can construct vertices in label order — but only because
// of the adversarial relabeling, never because labels follow topological
// rank.
var DagPath = &Task{
	Name:    "dagpath",
	Summary: "max value-sum path from the last vertex of a relabeled DAG",
	Cases:   25,
	Generate: func(idx int, s *sampler.Sampler) (corpus.Case, error) {
		var n, m int
		switch {
		case idx < 5:
			n, m = 10, 9
		case idx < 10:
			n, m = 10, 10
		case idx < 15:
			n, m = 10, 20
		default:
			n, m = 1000, 5000
		}

		g, err := graph.RandomDAG(n, m, s)
		if err != nil {
			return corpus.Case{}, err
		}
		// A cycle here means RandomDAG's invariant broke: abort, never emit.
		_, _, relabeled, err := graph.ReverseRankRelabel(g)
		if err != nil {
			return corpus.Case{}, err
		}

		values := make([]int, n)
		for v := range values {
			values[v], err = s.IntRange(0, 2*n)
			if err != nil {
				return corpus.Case{}, err
			}
		}

		adj := relabeled.Successors()

		var input strings.Builder
		fmt.Fprintf(&input, "%d\n", n)
		for v := 0; v < n; v++ {
			line := append([]int{values[v]}, adj[v]...)
			input.WriteString(joinInts(line))
			input.WriteByte('\n')
		}

		return corpus.Case{
			Input:    []byte(input.String()),
			Expected: []byte(fmt.Sprintf("%d\n", maxPathSum(adj, values, n-1))),
		}, nil
	},
}

// maxPathSum is the reference computation: the maximum sum of vertex values
// along any path starting at start. Memoized DFS; the graph is acyclic, and
// every successor has a smaller label, so an iterative sweep in label order
// resolves all dependencies.
func maxPathSum(adj [][]int, values []int, start int) int {
	best := make([]int, len(values))
	for v := 0; v <= start; v++ {
		maxNext := 0
		for _, next := range adj[v] {
			if best[next] > maxNext {
				maxNext = best[next]
			}
		}
		best[v] = values[v] + maxNext
	}
	return best[start]
}
