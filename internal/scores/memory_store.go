package scores

import (
	"context"
	"sync"

	"github.com/dkaratas/vrlearn-backend/internal/models"
	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests. It implements the
// same per-email serialization contract as GormStore with a per-email
// mutex instead of a row lock.
type MemoryStore struct {
	mu      sync.Mutex
	locks   map[string]*sync.Mutex
	records map[string]models.ScoreRecord
	history map[string][]models.ScoreSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locks:   map[string]*sync.Mutex{},
		records: map[string]models.ScoreRecord{},
		history: map[string][]models.ScoreSnapshot{},
	}
}

func (s *MemoryStore) lockFor(email string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[email]
	if !ok {
		l = &sync.Mutex{}
		s.locks[email] = l
	}
	return l
}

func (s *MemoryStore) Get(_ context.Context, email string) (*models.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (s *MemoryStore) History(_ context.Context, email string) ([]models.ScoreSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshots := make([]models.ScoreSnapshot, len(s.history[email]))
	copy(snapshots, s.history[email])
	return snapshots, nil
}

func (s *MemoryStore) Update(_ context.Context, email string, merge MergeFunc) error {
	l := s.lockFor(email)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	var existing *models.ScoreRecord
	if record, ok := s.records[email]; ok {
		existing = &record
	}
	s.mu.Unlock()

	record, snapshot, err := merge(existing)
	if err != nil {
		return err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}

	s.mu.Lock()
	s.records[email] = *record
	s.history[email] = append(s.history[email], *snapshot)
	s.mu.Unlock()
	return nil
}
