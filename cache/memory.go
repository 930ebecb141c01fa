package cache

import "sync"

type key struct {
	groupID  int64
	recordID int64
}

// MemoryStore implements Store with a mutex-guarded map. Intended for
// tests and short-lived sessions that do not need durable storage.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[key]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[key]Record)}
}

func (s *MemoryStore) Get(groupID, recordID int64) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[key{groupID, recordID}]
	if !ok {
		return nil, nil
	}
	copied := r
	copied.Fields = make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		copied.Fields[k] = v
	}
	return &copied, nil
}

func (s *MemoryStore) Set(record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *record
	stored.Fields = make(map[string]string, len(record.Fields))
	for k, v := range record.Fields {
		stored.Fields[k] = v
	}
	s.records[key{record.GroupID, record.RecordID}] = stored
	return nil
}
