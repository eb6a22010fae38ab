package graph

import (
	"errors"
	"testing"

	"github.com/matzehuels/caseforge/pkg/sampler"
)

func TestRandomWeightedBounds(t *testing.T) {
	g, err := RandomWeighted(100, 500, 1000, sampler.New(4))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Edges) != 500 {
		t.Fatalf("got %d edges, want 500", len(g.Edges))
	}
	for _, e := range g.Edges {
		if e.Weight < 0 || e.Weight > 1000 {
			t.Fatalf("weight %d out of [0,1000]", e.Weight)
		}
		if e.From < 0 || e.From >= 100 || e.To < 0 || e.To >= 100 {
			t.Fatalf("edge %d->%d out of range", e.From, e.To)
		}
	}
}

func TestRandomWeightedValidation(t *testing.T) {
	if _, err := RandomWeighted(0, 1, 1, sampler.New(1)); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
	if _, err := RandomWeighted(5, -1, 1, sampler.New(1)); !errors.Is(err, ErrNegativeEdges) {
		t.Fatalf("expected ErrNegativeEdges, got %v", err)
	}
	if _, err := RandomWeighted(5, 1, -1, sampler.New(1)); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestLadderShape(t *testing.T) {
	var adv LadderAdversary
	g, err := adv.Build(100, 1000, sampler.New(8))
	if err != nil {
		t.Fatal(err)
	}
	if g.N != 100 {
		t.Fatalf("got %d vertices, want 100", g.N)
	}
	// Two chains of half-1 edges, half rungs, two extras.
	want := 2*(50-1) + 50 + 2
	if len(g.Edges) != want {
		t.Fatalf("got %d edges, want %d", len(g.Edges), want)
	}
	for _, e := range g.Edges {
		if e.Weight < 1 || e.Weight > 1000 {
			t.Fatalf("weight %d out of [1,1000]", e.Weight)
		}
	}
}

// bellmanFordRounds runs the textbook relaxation loop, processing the edge
// list in reverse insertion order each pass, and returns the number of full
// passes needed before distances stop improving.
func bellmanFordRounds(g Graph, source int) int {
	const inf = int(^uint(0) >> 2)
	dist := make([]int, g.N)
	for i := range dist {
		dist[i] = inf
	}
	dist[source] = 0

	rounds := 0
	for {
		changed := false
		for i := len(g.Edges) - 1; i >= 0; i-- {
			e := g.Edges[i]
			if dist[e.From] != inf && dist[e.From]+e.Weight < dist[e.To] {
				dist[e.To] = dist[e.From] + e.Weight
				changed = true
			}
		}
		if !changed {
			break
		}
		rounds++
	}
	return rounds
}

func TestLadderForcesLinearRelaxationRounds(t *testing.T) {
	// The ladder's chain edges are emitted in ascending order, so an
	// adversarial pass order propagates distances a single hop per round:
	// a label-correcting solver needs Ω(N) rounds.
	const n = 200
	g, err := LadderAdversary{}.Build(n, 1000, sampler.New(24))
	if err != nil {
		t.Fatal(err)
	}
	rounds := bellmanFordRounds(g, 0)
	if rounds < n/8 {
		t.Fatalf("only %d relaxation rounds for n=%d, want at least %d", rounds, n, n/8)
	}
}

func TestLadderDeterministic(t *testing.T) {
	a, err := LadderAdversary{}.Build(50, 100, sampler.New(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := LadderAdversary{}.Build(50, 100, sampler.New(7))
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
