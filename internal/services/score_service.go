package services

import (
	"context"
	"errors"
	"time"

	"github.com/dkaratas/vrlearn-backend/internal/activity"
	"github.com/dkaratas/vrlearn-backend/internal/dto"
	"github.com/dkaratas/vrlearn-backend/internal/models"
	"github.com/dkaratas/vrlearn-backend/internal/scores"
	"github.com/dkaratas/vrlearn-backend/internal/scoring"
)

// ScoreService is the application boundary for score submissions and the
// two read views (current best per activity, full history).
type ScoreService struct {
	store scores.Store
}

func NewScoreService(store scores.Store) *ScoreService {
	return &ScoreService{store: store}
}

// Submit merges one submission into the caller's record. The merge and
// both writes (record + snapshot) happen inside the store's atomic Update,
// so a failed submission leaves nothing behind and a retry is safe: the
// monotonic-max policy makes equal-or-lower resubmissions no-ops on the
// current view.
func (s *ScoreService) Submit(ctx context.Context, email string, id activity.ID, score int) error {
	return s.store.Update(ctx, email, func(existing *models.ScoreRecord) (*models.ScoreRecord, *models.ScoreSnapshot, error) {
		return scoring.Merge(existing, id, score, email, time.Now().UTC())
	})
}

// GetCurrent returns the best score per activity. A user with no record
// gets an empty map, not an error.
func (s *ScoreService) GetCurrent(ctx context.Context, email string) (map[string]int, error) {
	record, err := s.store.Get(ctx, email)
	if errors.Is(err, scores.ErrNotFound) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, err
	}
	current := record.Current.Data()
	if current == nil {
		current = map[string]int{}
	}
	return current, nil
}

// GetHistory returns every snapshot for the user in ascending timestamp
// order, empty when none exist.
func (s *ScoreService) GetHistory(ctx context.Context, email string) ([]dto.PastScore, error) {
	snapshots, err := s.store.History(ctx, email)
	if err != nil {
		return nil, err
	}
	past := make([]dto.PastScore, 0, len(snapshots))
	for _, snap := range snapshots {
		scoresByActivity := snap.Scores.Data()
		if scoresByActivity == nil {
			scoresByActivity = map[string]int{}
		}
		past = append(past, dto.PastScore{
			Score:     scoresByActivity,
			Timestamp: snap.Timestamp.UTC().Format(time.RFC3339),
			Email:     snap.Email,
		})
	}
	return past, nil
}
