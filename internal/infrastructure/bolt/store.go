// Package bolt persists the application state in a local bbolt file.
// Everything lives in one bucket, one value per key, mirroring the
// original browser key-value storage. Each mutation rewrites the whole
// value for its key inside a single transaction, so storage always holds
// a consistent snapshot.
package bolt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
)

// Storage keys. These match the historical browser-storage entries.
const (
	keyInvoices               = "invoices"
	keyOrganizationSettings   = "organizationSettings"
	keyVerificationCode       = "verificationCode"
	keyVerificationExpiration = "verificationExpiration"
	keyVerificationEmail      = "verificationEmail"
	keyIsAuthenticated        = "isAuthenticated"
	keyUserEmail              = "userEmail"
)

var bucketName = []byte("donor-breeze")

// Store wraps the bbolt database. Construct once at startup and inject
// into the repositories.
type Store struct {
	db *bolt.DB
}

// Open creates or opens the database file, ensures the bucket exists and
// seeds the default organization settings on first run.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create data dir: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		if b.Get([]byte(keyOrganizationSettings)) == nil {
			raw, err := json.Marshal(entity.DefaultOrganizationSettings())
			if err != nil {
				return err
			}
			return b.Put([]byte(keyOrganizationSettings), raw)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// get returns a copy of the value for key, or nil when absent.
func (s *Store) get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

// putAll writes every key/value pair in one atomic transaction.
// A nil value deletes the key.
func (s *Store) putAll(kv map[string][]byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		for k, v := range kv {
			if v == nil {
				if err := b.Delete([]byte(k)); err != nil {
					return err
				}
				continue
			}
			if err := b.Put([]byte(k), v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) getJSON(key string, dst interface{}) (found bool, err error) {
	raw, err := s.get(key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) putJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return s.putAll(map[string][]byte{key: raw})
}
