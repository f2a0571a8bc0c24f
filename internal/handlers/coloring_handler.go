package handlers

import (
	"errors"

	"github.com/dkaratas/vrlearn-backend/internal/auth"
	"github.com/dkaratas/vrlearn-backend/internal/dto"
	"github.com/dkaratas/vrlearn-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ColoringHandler struct {
	coloringService *services.ColoringService
}

func NewColoringHandler(coloringService *services.ColoringService) *ColoringHandler {
	return &ColoringHandler{coloringService: coloringService}
}

// Save handles PUT /api/coloring/:imageId — upserts the canvas for one image.
func (h *ColoringHandler) Save(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req struct {
		CanvasState string `json:"canvas_state"`
	}
	if err := c.BodyParser(&req); err != nil || req.CanvasState == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "canvas_state is required",
		})
	}

	progress, err := h.coloringService.Save(email, c.Params("imageId"), req.CanvasState)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save coloring progress",
		})
	}

	return c.JSON(progress)
}

// Get handles GET /api/coloring/:imageId.
func (h *ColoringHandler) Get(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	progress, err := h.coloringService.Get(email, c.Params("imageId"))
	if err != nil {
		if errors.Is(err, services.ErrColoringNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(progress)
}

// List handles GET /api/coloring.
func (h *ColoringHandler) List(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	saved, err := h.coloringService.List(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"saved": saved})
}
