package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"peelvsu/intake/pkg/submission"
)

// MemoryStorage implements submission.Storage in memory, for tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string]*submission.SubmissionRecord
}

// NewMemoryStorage creates an empty in-memory submission store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records: make(map[string]*submission.SubmissionRecord),
	}
}

// Store persists a copy of the record.
func (s *MemoryStorage) Store(ctx context.Context, record *submission.SubmissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = copyRecord(record)
	return nil
}

// Get retrieves a single record by ID.
func (s *MemoryStorage) Get(ctx context.Context, id string) (*submission.SubmissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, submission.ErrNotFound
	}
	return copyRecord(record), nil
}

// Query retrieves records matching the query filters, sorted by SubmittedAt.
func (s *MemoryStorage) Query(ctx context.Context, query *submission.Query) ([]*submission.SubmissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []*submission.SubmissionRecord{}
	for _, record := range s.records {
		if matchesQuery(record, query) {
			results = append(results, copyRecord(record))
		}
	}

	asc := strings.EqualFold(query.SortOrder, "asc")
	sort.Slice(results, func(i, j int) bool {
		if asc {
			return results[i].SubmittedAt.Before(results[j].SubmittedAt)
		}
		return results[i].SubmittedAt.After(results[j].SubmittedAt)
	})

	// Pagination after sorting, mirroring the SQL backend.
	if query.Offset > 0 {
		if query.Offset >= len(results) {
			return []*submission.SubmissionRecord{}, nil
		}
		results = results[query.Offset:]
	}
	limit := 100
	if query.Limit > 0 {
		limit = query.Limit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// Count returns the number of records matching the query filters.
func (s *MemoryStorage) Count(ctx context.Context, query *submission.Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, record := range s.records {
		if matchesQuery(record, query) {
			count++
		}
	}
	return count, nil
}

// Delete removes records matching the query filters.
func (s *MemoryStorage) Delete(ctx context.Context, query *submission.Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for id, record := range s.records {
		if matchesQuery(record, query) {
			delete(s.records, id)
			count++
		}
	}
	return count, nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStorage) Close() error {
	return nil
}

func matchesQuery(record *submission.SubmissionRecord, query *submission.Query) bool {
	if query.StartTime != nil && record.SubmittedAt.Before(*query.StartTime) {
		return false
	}
	if query.EndTime != nil && record.SubmittedAt.After(*query.EndTime) {
		return false
	}
	if query.FormType != "" && record.FormType != query.FormType {
		return false
	}
	if query.OccurrenceNumber != "" &&
		!strings.EqualFold(record.OccurrenceNumber, query.OccurrenceNumber) {
		return false
	}
	return true
}

func copyRecord(record *submission.SubmissionRecord) *submission.SubmissionRecord {
	c := *record
	c.Values = record.Values.Clone()
	if record.SchemaVersion != nil {
		info := *record.SchemaVersion
		c.SchemaVersion = &info
	}
	return &c
}
