package handlers

import (
	"errors"
	"strconv"

	"github.com/dkaratas/vrlearn-backend/internal/auth"
	"github.com/dkaratas/vrlearn-backend/internal/dto"
	"github.com/dkaratas/vrlearn-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GroceryHandler struct {
	groceryService *services.GroceryService
}

func NewGroceryHandler(groceryService *services.GroceryService) *GroceryHandler {
	return &GroceryHandler{groceryService: groceryService}
}

// ListProducts handles GET /api/products.
func (h *GroceryHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.groceryService.ListProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load products",
		})
	}
	return c.JSON(products)
}

// GetProduct handles GET /api/products/:id.
func (h *GroceryHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid product id",
		})
	}

	product, err := h.groceryService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(product)
}

// ListProductsByCategory handles GET /api/products/category/:category.
func (h *GroceryHandler) ListProductsByCategory(c *fiber.Ctx) error {
	products, err := h.groceryService.ListProductsByCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load products",
		})
	}
	return c.JSON(products)
}

// GetCart handles GET /api/cart for the authenticated user.
func (h *GroceryHandler) GetCart(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items, err := h.groceryService.GetCart(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load cart",
		})
	}
	return c.JSON(items)
}

// AddToCart handles POST /api/cart.
func (h *GroceryHandler) AddToCart(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.groceryService.AddToCart(email, req.ProductID, req.Quantity)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrProductNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateCartItem handles PUT /api/cart/:id.
func (h *GroceryHandler) UpdateCartItem(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid cart item id",
		})
	}

	var req dto.UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.groceryService.UpdateCartItem(email, id, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotCartOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}
	return c.JSON(item)
}

// DeleteCartItem handles DELETE /api/cart/:id.
func (h *GroceryHandler) DeleteCartItem(c *fiber.Ctx) error {
	email, err := auth.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid cart item id",
		})
	}

	if err := h.groceryService.DeleteCartItem(email, id); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete cart item",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
