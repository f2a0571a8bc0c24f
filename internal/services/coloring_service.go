package services

import (
	"errors"
	"fmt"

	"github.com/dkaratas/vrlearn-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrColoringNotFound = errors.New("no saved coloring for this image")

type ColoringService struct {
	db *gorm.DB
}

func NewColoringService(db *gorm.DB) *ColoringService {
	return &ColoringService{db: db}
}

// Save upserts the canvas blob for one (email, image) pair. The canvas is
// opaque to the server; latest write wins on the composite unique index.
func (s *ColoringService) Save(email, imageID, canvasState string) (*models.ColoringProgress, error) {
	progress := models.ColoringProgress{
		ID:          uuid.New(),
		Email:       email,
		ImageID:     imageID,
		CanvasState: canvasState,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}, {Name: "image_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"canvas_state", "updated_at"}),
	}).Create(&progress).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save coloring progress: %w", err)
	}
	return &progress, nil
}

func (s *ColoringService) Get(email, imageID string) (*models.ColoringProgress, error) {
	var progress models.ColoringProgress
	err := s.db.Where("email = ? AND image_id = ?", email, imageID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrColoringNotFound
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// List returns every saved image for the user, most recently touched first.
func (s *ColoringService) List(email string) ([]models.ColoringProgress, error) {
	var saved []models.ColoringProgress
	err := s.db.Where("email = ?", email).Order("updated_at DESC").Find(&saved).Error
	return saved, err
}
