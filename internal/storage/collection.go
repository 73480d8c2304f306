package storage

import "encoding/json"

// Collection persists a whole entity list as one JSON array under a fixed
// key. Every write serializes the full slice; there is no per-record
// addressing and no schema migration.
type Collection[T any] struct {
	kv  KV
	key string
}

// NewCollection binds a collection to its storage key.
func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// Key returns the fixed storage key.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load reads and parses the stored list. If the key is absent, the seed list
// is written and returned. Parse errors propagate to the caller so the
// top-level load can fall back to seed data.
func (c *Collection[T]) Load(seed []T) ([]T, error) {
	data, err := c.kv.Get(c.key)
	if err != nil {
		if !IsErrKeyNotFound(err) {
			return nil, err
		}
		if err := c.Save(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save serializes the full list and writes it under the collection key.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.kv.Set(c.key, data)
}

// Scalar persists a single JSON value under a fixed key. Used for the
// last-refresh timestamp and the session record.
type Scalar[T any] struct {
	kv  KV
	key string
}

// NewScalar binds a scalar to its storage key.
func NewScalar[T any](kv KV, key string) *Scalar[T] {
	return &Scalar[T]{kv: kv, key: key}
}

// Load reads the stored value. Absence is reported via ErrKeyNotFound.
func (s *Scalar[T]) Load() (T, error) {
	var v T
	data, err := s.kv.Get(s.key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	return v, nil
}

// Save serializes and writes the value.
func (s *Scalar[T]) Save(v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, data)
}

// Clear removes the stored value.
func (s *Scalar[T]) Clear() error {
	return s.kv.Delete(s.key)
}
