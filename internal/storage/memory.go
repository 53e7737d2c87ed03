package storage

import (
	"encoding/json"
	"sync"
)

// memoryStore keeps values as JSON blobs so reads never alias what the
// caller wrote, matching the serialization boundary of the SQL store.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{values: map[string][]byte{}}
}

func (s *memoryStore) Get(key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	err := json.Unmarshal(raw, dest)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *memoryStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()

	return nil
}
