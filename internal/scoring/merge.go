// Package scoring implements the monotonic-max merge policy for score
// submissions. Merge is pure: it validates, computes, and returns new
// values without touching the database, so the policy can be tested and
// reasoned about in isolation from storage.
package scoring

import (
	"errors"
	"time"

	"github.com/dkaratas/vrlearn-backend/internal/activity"
	"github.com/dkaratas/vrlearn-backend/internal/models"
	"gorm.io/datatypes"
)

var (
	ErrUnknownActivity = errors.New("unknown activity")
	ErrScoreOutOfRange = errors.New("score out of range for activity")
)

// Merge combines an incoming submission with the user's existing record.
//
// An out-of-range score is rejected, never clamped, so a corrupt client
// cannot inflate a best score. When existing is nil a fresh record is
// created. The returned record's Current map holds, per activity, the
// maximum score ever accepted; a lower resubmission never regresses it.
//
// The returned snapshot is a full copy of the updated Current map stamped
// with now. Every accepted submission produces a snapshot, including
// no-op resubmissions: history is a submission log, not a value-change
// log, so a past-scores view can replay what the whole progress looked
// like at each submission.
//
// Merge never mutates existing and never persists anything.
func Merge(existing *models.ScoreRecord, id activity.ID, score int, email string, now time.Time) (*models.ScoreRecord, *models.ScoreSnapshot, error) {
	max, ok := activity.MaxScore(id)
	if !ok {
		return nil, nil, ErrUnknownActivity
	}
	if score < 0 || score > max {
		return nil, nil, ErrScoreOutOfRange
	}

	current := map[string]int{}
	record := &models.ScoreRecord{Email: email}
	if existing != nil {
		record = &models.ScoreRecord{
			ID:        existing.ID,
			Email:     existing.Email,
			CreatedAt: existing.CreatedAt,
		}
		for k, v := range existing.Current.Data() {
			current[k] = v
		}
	}

	if prev, ok := current[string(id)]; !ok || score > prev {
		current[string(id)] = score
	}
	record.Current = datatypes.NewJSONType(current)

	snapshot := map[string]int{}
	for k, v := range current {
		snapshot[k] = v
	}

	return record, &models.ScoreSnapshot{
		Email:     email,
		Scores:    datatypes.NewJSONType(snapshot),
		Timestamp: now,
	}, nil
}
