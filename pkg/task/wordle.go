package task

import (
	"strconv"
	"strings"

	"github.com/matzehuels/caseforge/pkg/corpus"
	"github.com/matzehuels/caseforge/pkg/sampler"
)

// wordlePairs is the fixed guess/answer table for the word-comparison task.
// The table is deliberately literal: it exercises duplicate-letter handling
// ("loose" vs "boost", "wanna" vs "crane") that random five-letter words
// rarely hit.
var wordlePairs = []struct{ guess, answer string }{
	{"floor", "cargo"},
	{"audio", "cargo"},
	{"crane", "cargo"},
	{"wanna", "cargo"},
	{"hello", "cargo"},
	{"boost", "cargo"},
	{"cargo", "cargo"},
	{"loops", "boost"},
	{"loose", "boost"},
	{"stood", "boost"},
	{"boost", "boost"},
	{"abuse", "crane"},
	{"wanna", "crane"},
	{"sleep", "crane"},
	{"crane", "crane"},
}

// Wordle emits the guess/answer table and expects one five-character
// G/Y/R color code per pair: G for a correct letter in the correct
// position, Y for a correct letter elsewhere (duplicate-aware), R otherwise.
//
// Input: a count line, then alternating guess and answer lines.
var Wordle = &Task{
	Name:    "wordle",
	Summary: "letter-position scoring over a fixed guess/answer table",
	Cases:   1,
	Generate: func(idx int, s *sampler.Sampler) (corpus.Case, error) {
		var input, expected strings.Builder

		input.WriteString(strconv.Itoa(len(wordlePairs)))
		input.WriteByte('\n')
		for _, p := range wordlePairs {
			input.WriteString(p.guess)
			input.WriteByte('\n')
			input.WriteString(p.answer)
			input.WriteByte('\n')
			expected.WriteString(scoreGuess(p.guess, p.answer))
			expected.WriteByte('\n')
		}

		return corpus.Case{
			Input:    []byte(input.String()),
			Expected: []byte(expected.String()),
		}, nil
	},
}

// scoreGuess is the reference coloring: two passes so duplicate letters in
// the guess only earn Y while unmatched copies remain in the answer.
func scoreGuess(guess, answer string) string {
	const n = 5
	out := []byte("RRRRR")

	var remaining [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			out[i] = 'G'
		} else {
			remaining[answer[i]-'a']++
		}
	}
	for i := 0; i < n; i++ {
		if out[i] == 'G' {
			continue
		}
		if c := guess[i] - 'a'; remaining[c] > 0 {
			out[i] = 'Y'
			remaining[c]--
		}
	}
	return string(out)
}
