package sessionstore

import (
	"sync"

	"github.com/tnhappykids/appcore/core/session"
)

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mutex sync.RWMutex
	table map[string]string

	// FailSet/FailGet/FailDelete, when set, make the corresponding
	// operation fail for matching keys, for exercising partial-failure
	// paths.
	FailSet    func(key string) error
	FailGet    func(key string) error
	FailDelete func(key string) error
}

var _ session.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{table: make(map[string]string)}
}

func (s *MemStore) Set(key, value string) error {
	if s.FailSet != nil {
		if err := s.FailSet(key); err != nil {
			return err
		}
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.table[key] = value
	return nil
}

func (s *MemStore) Get(key string) (string, bool, error) {
	if s.FailGet != nil {
		if err := s.FailGet(key); err != nil {
			return "", false, err
		}
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	val, ok := s.table[key]
	return val, ok, nil
}

func (s *MemStore) Delete(key string) error {
	if s.FailDelete != nil {
		if err := s.FailDelete(key); err != nil {
			return err
		}
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.table, key)
	return nil
}

// Len reports the number of stored keys.
func (s *MemStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.table)
}
