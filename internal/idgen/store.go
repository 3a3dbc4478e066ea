package idgen

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bkromhout/balances/internal/models"

	"gorm.io/gorm"
)

// GormStore keeps counters in the sequences table. Each increment is one
// short transaction: read the row, bump it, write it back.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a CounterStore persisting to db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Next increments the named counter and returns the new value. A counter is
// created on first use, so the first id issued is 1.
func (s *GormStore) Next(name string) (int64, error) {
	var id int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var seq models.Sequence
		err := tx.Where("name = ?", name).First(&seq).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seq = models.Sequence{Name: name}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("create sequence: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("load sequence: %w", err)
		}

		seq.Next++
		if err := tx.Save(&seq).Error; err != nil {
			return fmt.Errorf("save sequence: %w", err)
		}
		id = seq.Next
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// MemoryStore is an in-memory CounterStore for tests.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMemoryStore returns an empty in-memory CounterStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]int64)}
}

// Next increments the named counter and returns the new value.
func (s *MemoryStore) Next(name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	return s.counters[name], nil
}
