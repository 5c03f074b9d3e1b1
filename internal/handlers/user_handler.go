package handlers

import (
	"errors"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
	"github.com/gofiber/fiber/v2"
)

type profileMerger interface {
	MergeProfile(email string, patch models.ProfilePatch) (*models.UserRecord, error)
}

type UserHandler struct {
	users profileMerger
}

func NewUserHandler(users profileMerger) *UserHandler {
	return &UserHandler{users: users}
}

type syncRequest struct {
	Email   string              `json:"email"`
	Profile models.ProfilePatch `json:"profile"`
}

// Sync merges a partial profile into the stored record. Clients call this
// on every local profile change; absent fields stay untouched.
func (h *UserHandler) Sync(c *fiber.Ctx) error {
	var req syncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if _, err := h.users.MergeProfile(req.Email, req.Profile); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sync profile"})
	}

	return c.JSON(fiber.Map{"success": true})
}
