package repositories

import (
	"github.com/okdev/milton/internal/pkg/logger"
	"github.com/okdev/milton/internal/storage"
)

// Collection reads and writes one entity collection stored as a whole JSON
// array under a single key. Each collection has exactly one writing manager;
// the public views are read-only consumers of the same key.
type Collection[T any] struct {
	store *storage.Store
	key   string
}

// NewCollection creates a Collection bound to the given storage key.
func NewCollection[T any](store *storage.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Load returns the stored collection in insertion order. When nothing is
// stored it returns nil. A blob that cannot be deserialized is logged and
// treated as absent rather than propagated, so callers recover with an empty
// or seeded collection.
func (c *Collection[T]) Load() []T {
	var items []T
	found, err := c.store.Load(c.key, &items)
	if err != nil {
		logger.Error().Err(err).Str("key", c.key).Msg("Error loading stored collection")
		return nil
	}
	if !found {
		return nil
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Save serializes the full collection and writes it under the key. Failures
// (e.g. no space left on the device) are returned for the caller to surface,
// never retried.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.store.Save(c.key, items)
}
