package handlers

import (
	"errors"
	"log/slog"

	"github.com/dkaratas/vrlearn-backend/internal/activity"
	"github.com/dkaratas/vrlearn-backend/internal/auth"
	"github.com/dkaratas/vrlearn-backend/internal/dto"
	"github.com/dkaratas/vrlearn-backend/internal/scoring"
	"github.com/dkaratas/vrlearn-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ScoreHandler struct {
	scoreService *services.ScoreService
}

func NewScoreHandler(scoreService *services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// Submit handles POST /api/submit-score.
//
// The payload carries the email the client is submitting for; it must
// match the email in the verified token, otherwise one user could write
// another's scores. Nothing is persisted on any rejection path.
func (h *ScoreHandler) Submit(c *fiber.Ctx) error {
	authEmail, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Email != authEmail {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Email does not match authenticated user",
		})
	}

	err = h.scoreService.Submit(c.Context(), authEmail, activity.ID(req.Activity), req.Score)
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownActivity) || errors.Is(err, scoring.ErrScoreOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("score submission failed", "email", authEmail, "activity", req.Activity, "error", err.Error())
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save score, please retry",
		})
	}

	return c.JSON(dto.SubmitScoreResponse{Message: "Score submitted successfully"})
}

// GetCurrent handles GET /api/score — the best score per activity for the
// authenticated user. No submissions yet is an empty map, not an error.
func (h *ScoreHandler) GetCurrent(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	current, err := h.scoreService.GetCurrent(c.Context(), email)
	if err != nil {
		slog.Error("failed to load current scores", "email", email, "error", err.Error())
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load scores",
		})
	}

	return c.JSON(dto.CurrentScoreResponse{Score: current})
}

// GetHistory handles GET /api/past-scores — every snapshot in ascending
// timestamp order.
func (h *ScoreHandler) GetHistory(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	past, err := h.scoreService.GetHistory(c.Context(), email)
	if err != nil {
		slog.Error("failed to load past scores", "email", email, "error", err.Error())
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load past scores",
		})
	}

	return c.JSON(dto.PastScoresResponse{PastScores: past})
}
