package models

import (
	"time"

	"github.com/google/uuid"
)

// ColoringProgress stores the serialized canvas for one (user, image) pair.
// Latest write wins; the composite unique index backs the upsert.
type ColoringProgress struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email       string    `gorm:"not null;size:255;uniqueIndex:idx_coloring_email_image" json:"email"`
	ImageID     string    `gorm:"not null;size:100;uniqueIndex:idx_coloring_email_image" json:"image_id"`
	CanvasState string    `gorm:"type:text;not null" json:"canvas_state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
