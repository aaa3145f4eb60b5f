// Package store is the namespaced local key-value store backing the entity
// collections. Each key holds one JSON-encoded collection; absent or
// corrupt data degrades to the caller's default dataset instead of an
// error.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

type Store struct {
	db     *badger.DB
	prefix string
	log    *zap.Logger
}

// Open opens (or creates) the store at path. Keys are namespaced with
// prefix to avoid collision with unrelated data in the same store.
func Open(path, prefix string, log *zap.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	return &Store{db: db, prefix: prefix, log: log}, nil
}

// OpenInMemory opens an ephemeral store, used by tests.
func OpenInMemory(prefix string, log *zap.Logger) (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory store: %w", err)
	}

	return &Store{db: db, prefix: prefix, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Health reports whether the store is usable.
func (s *Store) Health() error {
	if s.db.IsClosed() {
		return errors.New("store is closed")
	}

	return s.db.View(func(txn *badger.Txn) error { return nil })
}

func (s *Store) key(name string) []byte {
	return []byte(s.prefix + ":" + name)
}

// Load decodes the collection stored under key into out. It returns false
// when the key is absent or its payload cannot be decoded; decode failures
// are logged, never propagated, so the caller can fall back to a working
// default dataset.
func (s *Store) Load(key string, out any) bool {
	var raw []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(key))
		if err != nil {
			return err
		}

		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.log.Warn("Failed to read stored collection",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("Stored collection is corrupt, falling back to defaults",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}

	return true
}

// Save encodes value and writes it under key. A failure must not block the
// in-memory mutation that triggered it; the returned error is a non-fatal
// warning for the caller.
func (s *Store) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(key), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to persist collection %s: %w", key, err)
	}

	return nil
}
