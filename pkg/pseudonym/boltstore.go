package pseudonym

import (
	"time"

	"gitlab.com/tozd/go/errors"
	bolt "go.etcd.io/bbolt"
)

// tableBucket holds pseudonym → original pairs, the same flat mapping the
// JSON interchange format carries.
var tableBucket = []byte("pseudonyms")

// BoltStore persists a pseudonym table in a bbolt file so pseudonymize and
// reverse runs can share state across process restarts.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating if absent) the store at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Errorf("opening pseudonym store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(tableBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Errorf("initializing pseudonym store: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Save writes the registry's full reverse table. Existing entries are
// overwritten; the registry only grows, so nothing is deleted.
func (s *BoltStore) Save(reg *Registry) error {
	table := reg.ReverseTable()
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(tableBucket)
		for pseudo, original := range table {
			if err := b.Put([]byte(pseudo), []byte(original)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("saving pseudonym table: %w", err)
	}
	return nil
}

// Load reads the persisted table into a fresh Registry, rebuilding the
// per-label counters from the stored pseudonyms.
func (s *BoltStore) Load() (*Registry, error) {
	reg := NewRegistry()
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(tableBucket)
		return b.ForEach(func(k, v []byte) error {
			reg.seed(string(k), string(v))
			return nil
		})
	})
	if err != nil {
		return nil, errors.Errorf("loading pseudonym table: %w", err)
	}
	return reg, nil
}
