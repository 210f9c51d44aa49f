package handlers

import "github.com/gofiber/fiber/v2"

type CategoryHandler struct {
	categories CategoryStore
}

// NewCategoryHandler returns the category listing handler.
func NewCategoryHandler(categories CategoryStore) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List serves the public category listing.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}
