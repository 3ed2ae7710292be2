package definition

import (
	"sort"
	"sync"
)

// Store is the persistence surface the save protocol needs. Real storage is
// the host's concern; the bridge only performs existence checks, position
// assignment and writes through this interface.
type Store interface {
	// NameExists reports whether another record with the same (site, model,
	// name) exists, excluding the given record ID.
	NameExists(site, model, name, excludeID string) (bool, error)
	// NextPosition returns the next ordering index for the (site, model) group.
	NextPosition(site, model string) (int, error)
	// Put persists the record.
	Put(rec *Record) error
	// ByModel lists the group's records ordered by position.
	ByModel(site, model string) ([]*Record, error)
}

// MemoryStore is an in-memory Store for tests and single-process hosts.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

func (s *MemoryStore) NameExists(site, model, name, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, rec := range s.records {
		if id == excludeID {
			continue
		}
		if rec.Site == site && rec.Model == model && rec.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) NextPosition(site, model string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	next := 0
	for _, rec := range s.records {
		if rec.Site == site && rec.Model == model && rec.Position >= next {
			next = rec.Position + 1
		}
	}
	return next, nil
}

func (s *MemoryStore) Put(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *rec
	if clone.Options != nil {
		options := make(map[string]any, len(clone.Options))
		for key, value := range clone.Options {
			options[key] = value
		}
		clone.Options = options
	}
	s.records[clone.ID] = &clone
	return nil
}

func (s *MemoryStore) ByModel(site, model string) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Record
	for _, rec := range s.records {
		if rec.Site == site && rec.Model == model {
			clone := *rec
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}
