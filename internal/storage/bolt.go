// Package storage is the local persistence adapter: a durable, single-file
// key/value store holding one JSON blob per collection key.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/okdev/milton/internal/pkg/apperrors"
)

// bucketName is the single bucket all collection keys live under.
var bucketName = []byte("milton")

// Store wraps the bbolt database handle.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file at the given path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create storage bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Load reads the blob stored under key into out. It returns false when no
// blob exists. A blob that cannot be deserialized yields an error wrapping
// apperrors.ErrMalformedRecord; recovering from that (empty collection, seed
// data) is the caller's policy.
func (s *Store) Load(key string, out interface{}) (bool, error) {
	if s.db == nil {
		return false, apperrors.ErrStorageClosed
	}

	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("error reading key %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: key %s: %v", apperrors.ErrMalformedRecord, key, err)
	}
	return true, nil
}

// Save serializes v and writes it under key, replacing any previous blob.
// Failures are returned to the caller and never retried.
func (s *Store) Save(key string, v interface{}) error {
	if s.db == nil {
		return apperrors.ErrStorageClosed
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error serializing key %s: %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("error writing key %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under key. Deleting an absent key is not an
// error.
func (s *Store) Delete(key string) error {
	if s.db == nil {
		return apperrors.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("error deleting key %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
