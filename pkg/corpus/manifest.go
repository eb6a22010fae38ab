package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// CaseHash records the SHA-256 hashes of one case's payloads.
type CaseHash struct {
	Index    int    `json:"index"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// Manifest describes one generation run of a single task. It carries enough
// information to reproduce the run (seed) and to verify reproduction without
// the payloads (per-case hashes): two runs with the same seed must produce
// byte-identical corpora, so their manifests differ only in RunID and time.
type Manifest struct {
	RunID       string     `json:"run_id"`
	Task        string     `json:"task"`
	Seed        uint64     `json:"seed"`
	Cases       int        `json:"cases"`
	GeneratedAt time.Time  `json:"generated_at"`
	Hashes      []CaseHash `json:"hashes"`
}

// NewManifest starts a manifest for a generation run, assigning a fresh run ID.
func NewManifest(task string, seed uint64) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		Task:        task,
		Seed:        seed,
		GeneratedAt: time.Now().UTC(),
	}
}

// AddCase records the hashes of a generated case and bumps the case count.
func (m *Manifest) AddCase(idx int, c Case) {
	m.Hashes = append(m.Hashes, CaseHash{
		Index:    idx,
		Input:    Hash(c.Input),
		Expected: Hash(c.Expected),
	})
	m.Cases++
}

// SameCorpus reports whether two manifests describe byte-identical corpora,
// ignoring run identity and timestamps.
func (m *Manifest) SameCorpus(other *Manifest) bool {
	if m.Task != other.Task || m.Seed != other.Seed || len(m.Hashes) != len(other.Hashes) {
		return false
	}
	for i := range m.Hashes {
		if m.Hashes[i] != other.Hashes[i] {
			return false
		}
	}
	return true
}

// WriteFile writes the manifest as indented JSON at path.
func (m *Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadManifest loads a manifest written by WriteFile.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return &m, nil
}
