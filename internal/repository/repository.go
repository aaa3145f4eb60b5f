// Package repository provides one generic CRUD repository shared by every
// entity kind, parameterized by a per-kind persistence key and insert
// position. Every successful mutation persists the full collection once;
// there is no incremental diffing.
package repository

import (
	"sync"

	"transport-console/internal/domain"
	"transport-console/internal/store"

	"go.uber.org/zap"
)

// Config is the small per-kind configuration of the generic repository.
type Config struct {
	// Key the collection is persisted under.
	Key string
	// InsertAtHead makes Create prepend instead of append, so List yields
	// most-recently-created first (shipments). Other kinds keep plain
	// insertion order.
	InsertAtHead bool
}

type Repository[T domain.Entity] struct {
	mu    sync.Mutex
	cfg   Config
	store *store.Store
	log   *zap.Logger
	items []T
}

// New loads the collection from the store, falling back to defaults when
// the stored data is absent or corrupt.
func New[T domain.Entity](st *store.Store, log *zap.Logger, cfg Config, defaults func() []T) *Repository[T] {
	r := &Repository[T]{cfg: cfg, store: st, log: log}

	if !st.Load(cfg.Key, &r.items) {
		if defaults != nil {
			r.items = defaults()
		}
		r.persist()
	}

	return r
}

// List returns a copy of the collection in its stored order.
func (r *Repository[T]) List() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the number of records in the collection.
func (r *Repository[T]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items)
}

// Get returns the record with the given id.
func (r *Repository[T]) Get(id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.EntityID() == id {
			return item, nil
		}
	}

	var zero T
	return zero, domain.ErrNotFound
}

// Create inserts the record and persists the collection. The caller is
// responsible for having assigned the id and timestamps.
func (r *Repository[T]) Create(item T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.InsertAtHead {
		r.items = append([]T{item}, r.items...)
	} else {
		r.items = append(r.items, item)
	}
	r.persist()

	return item
}

// Update applies a merge function to the stored record and persists. The
// collection is left unchanged when the id is absent or apply fails.
func (r *Repository[T]) Update(id string, apply func(*T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.EntityID() != id {
			continue
		}

		updated := item
		if err := apply(&updated); err != nil {
			var zero T
			return zero, err
		}

		r.items[i] = updated
		r.persist()
		return updated, nil
	}

	var zero T
	return zero, domain.ErrNotFound
}

// Delete removes the record and persists. Deleting does not cascade:
// records elsewhere keep any now-dangling reference.
func (r *Repository[T]) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.EntityID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist()
			return nil
		}
	}

	return domain.ErrNotFound
}

// ReplaceAll swaps in a whole new collection (backup restore) and persists.
func (r *Repository[T]) ReplaceAll(items []T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]T, len(items))
	copy(r.items, items)
	r.persist()
}

// persist is best-effort: a store failure must not roll back the in-memory
// mutation, it is surfaced as a warning only.
func (r *Repository[T]) persist() {
	if err := r.store.Save(r.cfg.Key, r.items); err != nil {
		r.log.Warn("Failed to persist collection",
			zap.String("key", r.cfg.Key),
			zap.Error(err),
		)
	}
}
