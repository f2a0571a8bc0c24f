package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dkaratas/vrlearn-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotSessionOwner = errors.New("session belongs to another user")
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) Start(email string) (*models.VRSession, error) {
	session := models.VRSession{
		ID:        uuid.New(),
		Email:     email,
		StartTime: time.Now().UTC(),
		Status:    models.SessionActive,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return &session, nil
}

func (s *SessionService) End(email string, id uuid.UUID) error {
	session, err := s.Get(email, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	session.EndTime = &now
	session.Status = models.SessionCompleted
	return s.db.Save(session).Error
}

func (s *SessionService) Get(email string, id uuid.UUID) (*models.VRSession, error) {
	var session models.VRSession
	err := s.db.First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.Email != email {
		return nil, ErrNotSessionOwner
	}
	return &session, nil
}

func (s *SessionService) ListForUser(email string) ([]models.VRSession, error) {
	var sessions []models.VRSession
	err := s.db.Where("email = ?", email).Order("start_time DESC").Find(&sessions).Error
	return sessions, err
}
