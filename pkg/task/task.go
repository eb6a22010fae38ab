// Package task defines the corpus tasks: for each task an input generator
// and an independent reference computation producing the expected output.
//
// Expectations are always derived by reference computation, never by
// running the implementation under test — a candidate is validated against
// an answer it had no hand in producing. The subprocess oracle
// (pkg/oracle) exists for cross-version regression runs, not as the source
// of truth.
package task

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/caseforge/pkg/corpus"
	"github.com/matzehuels/caseforge/pkg/sampler"
)

// Task is one corpus entry: a name, a default case count, and a generator
// producing an immutable (input, expected) pair per case index.
type Task struct {
	Name    string
	Summary string
	// Cases is the default number of cases per generation run.
	Cases int
	// Generate builds case idx (1-based) from a per-case sampler. The
	// sampler is derived from the run seed and idx, so every case is a
	// pure function of (seed, idx).
	Generate func(idx int, s *sampler.Sampler) (corpus.Case, error)
}

// All is the task registry, in presentation order.
var All = []*Task{
	SumSquares,
	BSTMax,
	DagPath,
	Shortest,
	RingMean,
	Wordle,
}

// Lookup finds a registered task by name.
func Lookup(name string) (*Task, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// CaseSampler derives the deterministic sampler for one case of a run.
// The multiplier keeps per-case streams disjoint for nearby seeds.
func CaseSampler(seed uint64, idx int) *sampler.Sampler {
	return sampler.New(seed*1_000_003 + uint64(idx))
}

// Run generates cases 1..cases (t.Cases when cases <= 0) into store and
// returns the run manifest. Generation stops at the first error; a corpus
// built on a failed invariant is never partially usable by index anyway.
func (t *Task) Run(ctx context.Context, store corpus.Store, seed uint64, cases int) (*corpus.Manifest, error) {
	if cases <= 0 {
		cases = t.Cases
	}
	m := corpus.NewManifest(t.Name, seed)

	for idx := 1; idx <= cases; idx++ {
		c, err := t.Generate(idx, CaseSampler(seed, idx))
		if err != nil {
			return nil, fmt.Errorf("task %s case %d: %w", t.Name, idx, err)
		}
		if err := store.WriteCase(ctx, t.Name, idx, c); err != nil {
			return nil, fmt.Errorf("task %s case %d: %w", t.Name, idx, err)
		}
		m.AddCase(idx, c)
	}
	return m, nil
}

// joinInts renders values as a single space-separated line without the
// trailing newline.
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
