package scores

import (
	"context"
	"errors"

	"github.com/dkaratas/vrlearn-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists score records in Postgres. One row per user in
// score_records, history as append-only rows in score_snapshots.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, email string) (*models.ScoreRecord, error) {
	var record models.ScoreRecord
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormStore) History(ctx context.Context, email string) ([]models.ScoreSnapshot, error) {
	var snapshots []models.ScoreSnapshot
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		Order("timestamp ASC").
		Find(&snapshots).Error
	return snapshots, err
}

// Update runs merge inside a transaction holding a FOR UPDATE lock on the
// user's record row, so concurrent submissions for the same email
// serialize at the database. Two first-ever submissions can race past the
// lock (no row to lock yet); the unique index on email fails one insert
// and a single retry re-reads the winner's row.
func (s *GormStore) Update(ctx context.Context, email string, merge MergeFunc) error {
	var retried bool
	for {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing *models.ScoreRecord
			var row models.ScoreRecord
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("email = ?", email).
				First(&row).Error
			switch {
			case err == nil:
				existing = &row
			case errors.Is(err, gorm.ErrRecordNotFound):
				existing = nil
			default:
				return err
			}

			record, snapshot, err := merge(existing)
			if err != nil {
				return err
			}
			if err := tx.Save(record).Error; err != nil {
				return err
			}
			return tx.Create(snapshot).Error
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) && !retried {
			retried = true
			continue
		}
		return err
	}
}
