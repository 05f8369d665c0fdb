package itemlog

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/zeebo/xxh3"
)

// Status classifies how a run resolved an item
type Status string

const (
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusFailed    Status = "failed"
)

// Entry records one resolved item
type Entry struct {
	URI       string    `json:"uri"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail,omitempty"`
}

// Log is a durable record of completed items, keyed by hashed URI.
// It lets later runs skip items that already resolved successfully.
type Log struct {
	db *badger.DB
}

// Open opens (or creates) an item log at the given path
func Open(path string) (*Log, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open item log: %w", err)
	}

	return &Log{db: db}, nil
}

// Close closes the underlying store
func (l *Log) Close() error {
	return l.db.Close()
}

// key hashes a URI to a fixed 16-byte key (128-bit xxhash3)
func key(uri string) []byte {
	hash := xxh3.Hash128([]byte(uri))
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], hash.Hi)
	binary.BigEndian.PutUint64(buf[8:16], hash.Lo)
	return buf
}

// Record stores an entry for a URI, replacing any earlier entry
func (l *Log) Record(entry Entry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}

	return l.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(entry.URI), value)
	})
}

// Get retrieves the entry for a URI, if recorded
func (l *Log) Get(uri string) (*Entry, bool, error) {
	var entry Entry
	found := false

	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(uri))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Completed reports whether a URI resolved successfully in an earlier run
func (l *Log) Completed(uri string) (bool, error) {
	entry, found, err := l.Get(uri)
	if err != nil || !found {
		return false, err
	}
	return entry.Status == StatusUpdated || entry.Status == StatusUnchanged, nil
}

// Len counts recorded entries
func (l *Log) Len() (int, error) {
	count := 0
	err := l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
