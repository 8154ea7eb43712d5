package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mablo/mablo/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketInquiries = []byte("inquiries")
)

// dbFile is the outbox database file name inside the storage directory
const dbFile = "outbox.db"

// OutboxStore implements domain.InquiryStore using BoltDB.
type OutboxStore struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects memory cache and closed flag
	closed bool

	// In-memory copy of every inquiry; the only copy in memory-only mode
	cache map[string][]byte
}

// NewOutboxStore opens (or creates) the outbox under dir.
// An empty dir gives a memory-only store.
func NewOutboxStore(dir string) (*OutboxStore, error) {
	if dir == "" {
		// Memory-only mode (no persistence)
		return &OutboxStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketInquiries)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &OutboxStore{db: db, cache: make(map[string][]byte)}
	if err := s.warm(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// warm loads every stored inquiry into the memory cache
func (s *OutboxStore) warm() error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketInquiries).ForEach(func(k, v []byte) error {
			data := make([]byte, len(v))
			copy(data, v)
			s.cache[string(k)] = data
			return nil
		})
	})
}

// Close releases the database
func (s *OutboxStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveInquiry stores inq, replacing any inquiry with the same ID
func (s *OutboxStore) SaveInquiry(inq domain.Inquiry) error {
	if inq.ID == "" {
		return fmt.Errorf("save inquiry: %w", domain.ErrInvalidInquiry)
	}
	data, err := json.Marshal(inq)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketInquiries).Put([]byte(inq.ID), data)
		})
		if err != nil {
			return fmt.Errorf("failed to write inquiry: %w", err)
		}
	}
	s.cache[inq.ID] = data
	return nil
}

// GetInquiry returns the inquiry with the given ID
func (s *OutboxStore) GetInquiry(id string) (domain.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.Inquiry{}, domain.ErrStoreClosed
	}

	data, ok := s.cache[id]
	if !ok {
		return domain.Inquiry{}, fmt.Errorf("%s: %w", id, domain.ErrInquiryNotFound)
	}

	var inq domain.Inquiry
	if err := json.Unmarshal(data, &inq); err != nil {
		return domain.Inquiry{}, err
	}
	return inq, nil
}

// ListInquiries returns every inquiry, oldest first
func (s *OutboxStore) ListInquiries() ([]domain.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.ErrStoreClosed
	}

	inquiries := make([]domain.Inquiry, 0, len(s.cache))
	for id, data := range s.cache {
		var inq domain.Inquiry
		if err := json.Unmarshal(data, &inq); err != nil {
			return nil, fmt.Errorf("corrupt inquiry %s: %w", id, err)
		}
		inquiries = append(inquiries, inq)
	}

	sort.Slice(inquiries, func(i, j int) bool {
		if !inquiries[i].SubmittedAt.Equal(inquiries[j].SubmittedAt) {
			return inquiries[i].SubmittedAt.Before(inquiries[j].SubmittedAt)
		}
		return inquiries[i].ID < inquiries[j].ID
	})
	return inquiries, nil
}

// DeleteInquiry removes the inquiry with the given ID
func (s *OutboxStore) DeleteInquiry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}

	delete(s.cache, id)
	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketInquiries).Delete([]byte(id))
	})
}
