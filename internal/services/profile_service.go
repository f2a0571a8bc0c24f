package services

import (
	"errors"
	"fmt"

	"github.com/dkaratas/vrlearn-backend/internal/dto"
	"github.com/dkaratas/vrlearn-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) Get(email string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("email = ?", email).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save creates the profile on first write and overwrites the editable
// fields after that. Latest write wins.
func (s *ProfileService) Save(email string, req *dto.SaveProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("email = ?", email).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{ID: uuid.New(), Email: email}
	} else if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Age = req.Age
	profile.Gender = req.Gender
	profile.Disorder = req.Disorder
	profile.Mobile = req.Mobile
	profile.Avatar = req.Avatar

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return &profile, nil
}
