package handlers

import (
	"github.com/arzan03/PawPal/internal/models"
	"github.com/arzan03/PawPal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PetHandler struct {
	pets PetStore
}

// NewPetHandler returns the pet route handlers.
func NewPetHandler(pets PetStore) *PetHandler {
	return &PetHandler{pets: pets}
}

// List serves the public listing, optionally narrowed by ?category= and ?search=.
func (h *PetHandler) List(c *fiber.Ctx) error {
	pets, err := h.pets.List(c.UserContext(), services.PetFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(pets)
}

// ListMine lists pets by ?email=, defaulting to the caller.
func (h *PetHandler) ListMine(c *fiber.Ctx) error {
	pets, err := h.pets.ListByOwner(c.UserContext(), ownerEmail(c))
	if err != nil {
		return err
	}
	return c.JSON(pets)
}

// Get answers null rather than 404 for an unknown pet.
func (h *PetHandler) Get(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	pet, err := h.pets.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(pet)
}

// Create stores a pet owned by the caller unless the body names an owner.
func (h *PetHandler) Create(c *fiber.Ctx) error {
	var pet models.Pet
	if err := c.BodyParser(&pet); err != nil {
		return errInvalidBody
	}
	if pet.Email == "" {
		pet.Email = callerEmail(c)
	}

	result, err := h.pets.Create(c.UserContext(), pet)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Delete answers a zero deletedCount for an unknown pet.
func (h *PetHandler) Delete(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	result, err := h.pets.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// MarkAdopted is the adopter-facing status change; it can only set adopted.
func (h *PetHandler) MarkAdopted(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	result, err := h.pets.SetAdopted(c.UserContext(), id, true)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// SetAdopted sets adopted from the required boolean body.adopted.
func (h *PetHandler) SetAdopted(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	var request struct {
		Adopted *bool `json:"adopted"`
	}
	if err := c.BodyParser(&request); err != nil || request.Adopted == nil {
		return errInvalidBody
	}

	result, err := h.pets.SetAdopted(c.UserContext(), id, *request.Adopted)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Update decodes into models.PetUpdate, so fields outside it are dropped.
func (h *PetHandler) Update(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	var update models.PetUpdate
	if err := c.BodyParser(&update); err != nil {
		return errInvalidBody
	}

	result, err := h.pets.Update(c.UserContext(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
