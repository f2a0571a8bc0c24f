// Package scores persists per-user score records and their append-only
// history snapshots.
package scores

import (
	"context"
	"errors"

	"github.com/dkaratas/vrlearn-backend/internal/models"
)

// ErrNotFound is returned by Get when no record exists for the email. A
// user with no completed activities is a valid, common state; callers
// translate this to an empty view, not an error response.
var ErrNotFound = errors.New("score record not found")

// MergeFunc computes the updated record and the history snapshot for one
// submission. existing is nil when the user has no record yet. Returning
// an error aborts the update with nothing persisted.
type MergeFunc func(existing *models.ScoreRecord) (*models.ScoreRecord, *models.ScoreSnapshot, error)

// Store is the persistence boundary for score records.
//
// Update must serialize concurrent read-merge-write cycles for the same
// email: the effective result of concurrent submissions is equivalent to
// some serial ordering of them. Without that, two submissions reading the
// same stale record would let the second write clobber the first's
// activity. Different emails never contend.
type Store interface {
	Get(ctx context.Context, email string) (*models.ScoreRecord, error)
	History(ctx context.Context, email string) ([]models.ScoreSnapshot, error)
	Update(ctx context.Context, email string, merge MergeFunc) error
}
