package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists cases as sibling files under a base directory:
// <dir>/<task>/test_<idx>.in holds the input payload and
// <dir>/<task>/test_<idx>.ans the expected output.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store's base directory.
func (s *FileStore) Dir() string { return s.dir }

// InputPath returns the path of the input payload file for a case.
func (s *FileStore) InputPath(task string, idx int) string {
	return filepath.Join(s.dir, task, fmt.Sprintf("test_%d.in", idx))
}

// ExpectedPath returns the path of the expected-output file for a case.
func (s *FileStore) ExpectedPath(task string, idx int) string {
	return filepath.Join(s.dir, task, fmt.Sprintf("test_%d.ans", idx))
}

// WriteCase writes both payload files for the case.
func (s *FileStore) WriteCase(ctx context.Context, task string, idx int, c Case) error {
	if err := os.MkdirAll(filepath.Join(s.dir, task), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(s.InputPath(task, idx), c.Input, 0644); err != nil {
		return fmt.Errorf("write input: %w", err)
	}
	if err := os.WriteFile(s.ExpectedPath(task, idx), c.Expected, 0644); err != nil {
		return fmt.Errorf("write expected: %w", err)
	}
	return nil
}

// ReadCase reads both payload files. A case with either file missing is
// reported as absent, not as an error.
func (s *FileStore) ReadCase(ctx context.Context, task string, idx int) (Case, bool, error) {
	input, err := os.ReadFile(s.InputPath(task, idx))
	if os.IsNotExist(err) {
		return Case{}, false, nil
	}
	if err != nil {
		return Case{}, false, err
	}
	expected, err := os.ReadFile(s.ExpectedPath(task, idx))
	if os.IsNotExist(err) {
		return Case{}, false, nil
	}
	if err != nil {
		return Case{}, false, err
	}
	return Case{Input: input, Expected: expected}, true, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
