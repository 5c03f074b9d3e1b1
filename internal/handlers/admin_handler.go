package handlers

import (
	"errors"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
	"github.com/gofiber/fiber/v2"
)

type userLister interface {
	List() []models.UserRecord
}

type approver interface {
	AdminApprove(email string) (*models.UserRecord, error)
}

type reviewLister interface {
	List() []models.ReviewEntry
}

type AdminHandler struct {
	users        userLister
	entitlements approver
	reviews      reviewLister
}

func NewAdminHandler(users userLister, entitlements approver, reviews reviewLister) *AdminHandler {
	return &AdminHandler{
		users:        users,
		entitlements: entitlements,
		reviews:      reviews,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	records := h.users.List()
	summaries := make([]models.AdminUserSummary, 0, len(records))
	for i := range records {
		summaries = append(summaries, records[i].Summary())
	}
	return c.JSON(summaries)
}

func (h *AdminHandler) ListReviews(c *fiber.Ctx) error {
	return c.JSON(h.reviews.List())
}

type approveRequest struct {
	Email string `json:"email"`
}

func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	var req approveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if _, err := h.entitlements.AdminApprove(req.Email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve user"})
	}

	return c.JSON(fiber.Map{"success": true})
}
