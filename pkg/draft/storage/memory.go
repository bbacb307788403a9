package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"peelvsu/intake/pkg/draft"
	"peelvsu/intake/pkg/forms"
)

// MemoryStorage implements draft.Storage entirely in memory. It is used by
// tests and by the --no-persist mode where drafts should not touch disk.
type MemoryStorage struct {
	mu     sync.RWMutex
	drafts map[string]*draft.Draft
}

// NewMemoryStorage creates an empty in-memory draft store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		drafts: make(map[string]*draft.Draft),
	}
}

// Save stores a copy of the draft, so later caller mutations do not leak in.
func (s *MemoryStorage) Save(ctx context.Context, d *draft.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = copyDraft(d)
	return nil
}

// Get returns a copy of the draft with the given ID, or draft.ErrNotFound.
func (s *MemoryStorage) Get(ctx context.Context, id string) (*draft.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, draft.ErrNotFound
	}
	return copyDraft(d), nil
}

// List returns drafts newest-first, optionally filtered by form type.
func (s *MemoryStorage) List(ctx context.Context, formType forms.FormType) ([]*draft.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []*draft.Draft{}
	for _, d := range s.drafts {
		if formType != "" && d.FormType != formType {
			continue
		}
		results = append(results, copyDraft(d))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].UpdatedAt.After(results[j].UpdatedAt)
	})
	return results, nil
}

// Delete removes a draft by ID.
func (s *MemoryStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return draft.ErrNotFound
	}
	delete(s.drafts, id)
	return nil
}

// DeleteOlderThan removes drafts last updated before cutoff.
func (s *MemoryStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for id, d := range s.drafts {
		if d.UpdatedAt.Before(cutoff) {
			delete(s.drafts, id)
			count++
		}
	}
	return count, nil
}

// Count returns the number of stored drafts.
func (s *MemoryStorage) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.drafts)), nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStorage) Close() error {
	return nil
}

func copyDraft(d *draft.Draft) *draft.Draft {
	c := *d
	c.Values = d.Values.Clone()
	return &c
}
