// Package corpus persists generated test cases and reads them back for
// validation runs.
//
// A test case is an immutable (input, expected-output) pair addressed by a
// task name and an integer case index. Cases are created once by a
// generator, never mutated, and consumed by the oracle harness or a test
// runner. Two storage backends are provided: a file store using the
// classic test_<idx>.in / test_<idx>.ans sibling-file layout, and a Redis
// store for shared corpora. A null store supports dry runs.
package corpus

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrNotFound is returned by Store helpers when a requested case does not exist.
var ErrNotFound = errors.New("case not found")

// Case is an immutable input/expected-output payload pair.
type Case struct {
	Input    []byte
	Expected []byte
}

// Store persists and retrieves test cases.
//
// ReadCase reports existence with its second return value rather than an
// error, so callers can distinguish a miss from a backend failure.
type Store interface {
	WriteCase(ctx context.Context, task string, idx int, c Case) error
	ReadCase(ctx context.Context, task string, idx int) (Case, bool, error)
	Close() error
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
// Manifests record per-payload hashes so two generation runs can be
// compared for byte-identity without diffing the payloads themselves.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
