package dto

import "github.com/dkaratas/vrlearn-backend/internal/models"

type SaveProfileRequest struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Disorder string `json:"disorder"`
	Mobile   string `json:"mobile"`
	Avatar   string `json:"avatar"`
}

type ProfileResponse struct {
	Profile *models.Profile `json:"profile"`
}
