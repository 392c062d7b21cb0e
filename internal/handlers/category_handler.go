package handlers

import (
	"catalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler serves the fixed category set.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleGetCategories)
}

// HandleGetCategories lists all valid product categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": models.AllCategories(),
	})
}
