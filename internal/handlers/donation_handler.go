package handlers

import (
	"github.com/arzan03/PawPal/internal/models"
	"github.com/gofiber/fiber/v2"
)

type DonationHandler struct {
	donations DonationStore
}

// NewDonationHandler returns the donation campaign route handlers.
func NewDonationHandler(donations DonationStore) *DonationHandler {
	return &DonationHandler{donations: donations}
}

// List serves the public campaign listing.
func (h *DonationHandler) List(c *fiber.Ctx) error {
	campaigns, err := h.donations.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(campaigns)
}

// ListMine lists campaigns by ?email=, defaulting to the caller.
func (h *DonationHandler) ListMine(c *fiber.Ctx) error {
	campaigns, err := h.donations.ListByOwner(c.UserContext(), ownerEmail(c))
	if err != nil {
		return err
	}
	return c.JSON(campaigns)
}

// Get answers null rather than 404 for an unknown campaign.
func (h *DonationHandler) Get(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	campaign, err := h.donations.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(campaign)
}

// Create stores a campaign owned by the caller unless the body names an owner.
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var campaign models.Donation
	if err := c.BodyParser(&campaign); err != nil {
		return errInvalidBody
	}
	if campaign.Email == "" {
		campaign.Email = callerEmail(c)
	}

	result, err := h.donations.Create(c.UserContext(), campaign)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// SetStatus replaces the campaign status from body.status.
func (h *DonationHandler) SetStatus(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	var request struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil || request.Status == "" {
		return errInvalidBody
	}

	result, err := h.donations.SetStatus(c.UserContext(), id, request.Status)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Update decodes into models.DonationUpdate, so fields outside it are dropped.
func (h *DonationHandler) Update(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}

	var update models.DonationUpdate
	if err := c.BodyParser(&update); err != nil {
		return errInvalidBody
	}

	result, err := h.donations.Update(c.UserContext(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
