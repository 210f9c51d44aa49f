package handlers

import (
	"errors"

	"github.com/arzan03/PawPal/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type UserHandler struct {
	users UserStore
}

// NewUserHandler returns the user and admin route handlers.
func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// Register creates the user on first sign-in. A repeat registration is not
// an HTTP error: it answers 200 with a null insertedId.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var profile bson.M
	if err := c.BodyParser(&profile); err != nil || profile == nil {
		return errInvalidBody
	}

	result, err := h.users.Register(c.UserContext(), profile)
	switch {
	case errors.Is(err, services.ErrUserExists):
		return c.JSON(fiber.Map{"message": "User already exists.", "insertedId": nil})
	case errors.Is(err, services.ErrMissingEmail):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}
	return c.JSON(result)
}

// CheckAdmin reports whether the caller is an admin. The route's gates
// guarantee :email is the caller's own. A user with no stored document
// is reported as not an admin.
func (h *UserHandler) CheckAdmin(c *fiber.Ctx) error {
	user, err := h.users.FindByEmail(c.UserContext(), callerEmail(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": user != nil && user.IsAdmin()})
}

// ListUsers is admin only.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// PromoteToAdmin is admin only.
func (h *UserHandler) PromoteToAdmin(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	result, err := h.users.PromoteToAdmin(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
