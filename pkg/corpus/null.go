package corpus

import "context"

// NullStore discards every write and holds no cases.
// Useful for dry runs where only generation errors and manifests matter.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore { return &NullStore{} }

// WriteCase does nothing.
func (s *NullStore) WriteCase(ctx context.Context, task string, idx int, c Case) error {
	return nil
}

// ReadCase always reports the case as absent.
func (s *NullStore) ReadCase(ctx context.Context, task string, idx int) (Case, bool, error) {
	return Case{}, false, nil
}

// Close does nothing.
func (s *NullStore) Close() error { return nil }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
