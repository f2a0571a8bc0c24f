package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScoreRecord is the per-user scoring aggregate. Current maps an activity
// identifier to the best score ever accepted for that activity; it only
// ever grows per key (monotonic-max merge policy).
type ScoreRecord struct {
	ID        uuid.UUID                          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string                             `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Current   datatypes.JSONType[map[string]int] `gorm:"type:jsonb" json:"current"`
	CreatedAt time.Time                          `json:"created_at"`
	UpdatedAt time.Time                          `json:"updated_at"`
}

// ScoreSnapshot is one immutable history entry: a full copy of the user's
// Current map taken at submission time. Rows are append-only; nothing in
// the application updates or deletes them.
type ScoreSnapshot struct {
	ID        uuid.UUID                          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string                             `gorm:"not null;size:255;index" json:"email"`
	Scores    datatypes.JSONType[map[string]int] `gorm:"type:jsonb" json:"scores"`
	Timestamp time.Time                          `gorm:"not null;index" json:"timestamp"`
}
