package handlers

import (
	"github.com/arzan03/PawPal/internal/access"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	errInvalidID   = fiber.NewError(fiber.StatusBadRequest, "invalid id")
	errInvalidBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
)

// objectID parses the :id route parameter.
func objectID(c *fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, errInvalidID
	}
	return id, nil
}

// callerEmail is the authenticated email, empty on public routes.
func callerEmail(c *fiber.Ctx) string {
	if claims, ok := access.ClaimsFrom(c); ok {
		return claims.Email
	}
	return ""
}

// ownerEmail reads ?email= and falls back to the caller.
func ownerEmail(c *fiber.Ctx) string {
	if email := c.Query("email"); email != "" {
		return email
	}
	return callerEmail(c)
}
