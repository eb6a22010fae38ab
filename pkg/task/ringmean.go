package task

import (
	"fmt"
	"strings"

	"github.com/matzehuels/caseforge/pkg/corpus"
	"github.com/matzehuels/caseforge/pkg/sampler"
)

// workerCounts are the admissible worker pools for the ring-mean task.
// Candidates use a binary reduction tree, so counts are powers of two.
var workerCounts = []int{4, 8, 16}

// RingMean exercises a concurrent scatter/reduce pipeline: a worker count
// and mode flag, then worker·chunk integer values. Odd case indexes use
// mode 0 (each worker reports the mean of its consecutive chunk, one
// "worker_index mean" line each); even indexes use mode 1 (a single
// "0 global_mean" line). Means are formatted to exactly three decimals —
// the oracle comparison is textual, so formatting is part of the contract.
var RingMean = &Task{
	Name:    "ringmean",
	Summary: "per-worker chunk means or global mean from a worker pipeline",
	Cases:   20,
	Generate: func(idx int, s *sampler.Sampler) (corpus.Case, error) {
		workers, err := sampler.Choice(s, workerCounts)
		if err != nil {
			return corpus.Case{}, err
		}
		chunk, err := s.IntRange(1, 10)
		if err != nil {
			return corpus.Case{}, err
		}
		values, err := s.Ints(workers*chunk, 1, 100)
		if err != nil {
			return corpus.Case{}, err
		}

		mode := 0
		if idx%2 == 0 {
			mode = 1
		}

		input := fmt.Sprintf("%d %d\n%s\n", workers, mode, joinInts(values))

		var expected strings.Builder
		if mode == 0 {
			for i := 0; i < workers; i++ {
				fmt.Fprintf(&expected, "%d %.3f\n", i, mean(values[i*chunk:(i+1)*chunk]))
			}
		} else {
			fmt.Fprintf(&expected, "0 %.3f\n", mean(values))
		}

		return corpus.Case{
			Input:    []byte(input),
			Expected: []byte(expected.String()),
		}, nil
	},
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
