package task

import (
	"fmt"

	"github.com/matzehuels/caseforge/pkg/corpus"
	"github.com/matzehuels/caseforge/pkg/sampler"
)

// SumSquares draws a random-length integer array and expects the sum of
// the squares of its elements.
//
// Input: one line of space-separated integers, length in [1,100], values
// in [-100,100]. Expected: a single integer line.
var SumSquares = &Task{
	Name:    "sumsquares",
	Summary: "sum of squares of a random integer array",
	Cases:   10,
	Generate: func(idx int, s *sampler.Sampler) (corpus.Case, error) {
		n, err := s.IntRange(1, 100)
		if err != nil {
			return corpus.Case{}, err
		}
		values, err := s.Ints(n, -100, 100)
		if err != nil {
			return corpus.Case{}, err
		}

		sum := 0
		for _, v := range values {
			sum += v * v
		}

		return corpus.Case{
			Input:    []byte(joinInts(values) + "\n"),
			Expected: []byte(fmt.Sprintf("%d\n", sum)),
		}, nil
	},
}
