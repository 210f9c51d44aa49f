package handlers

import (
	"errors"

	"github.com/arzan03/PawPal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	tokens TokenIssuer
}

// NewAuthHandler returns the token endpoint handler.
func NewAuthHandler(tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs every claim in the request body; email is required.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var identity map[string]any
	if err := c.BodyParser(&identity); err != nil {
		return errInvalidBody
	}

	token, err := h.tokens.Issue(identity)
	if errors.Is(err, services.ErrMissingEmail) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": token})
}
