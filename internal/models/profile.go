package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the presentational fields a user fills in after sign-up.
// One row per user, created lazily on first save.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name      string    `gorm:"size:150" json:"name"`
	Age       string    `gorm:"size:10" json:"age"`
	Gender    string    `gorm:"size:30" json:"gender"`
	Disorder  string    `gorm:"size:100" json:"disorder"`
	Mobile    string    `gorm:"size:30" json:"mobile"`
	Avatar    string    `gorm:"type:text" json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
