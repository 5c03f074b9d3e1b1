package handlers

import (
	"errors"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
	"github.com/gofiber/fiber/v2"
)

type entitlementService interface {
	SubmitPayment(email, transactionID string) (*models.UserRecord, error)
	RedeemCode(email, code string) (*models.UserRecord, error)
}

type PaymentHandler struct {
	entitlements entitlementService
}

func NewPaymentHandler(entitlements entitlementService) *PaymentHandler {
	return &PaymentHandler{entitlements: entitlements}
}

type submitPaymentRequest struct {
	Email         string `json:"email"`
	TransactionID string `json:"transactionId"`
}

type redeemRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (h *PaymentHandler) Submit(c *fiber.Ctx) error {
	var req submitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.entitlements.SubmitPayment(req.Email, req.TransactionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit payment"})
	}

	return c.JSON(fiber.Map{"success": true, "user": record.Profile})
}

func (h *PaymentHandler) Redeem(c *fiber.Ctx) error {
	var req redeemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.entitlements.RedeemCode(req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, store.ErrInvalidCode):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or expired license key"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to redeem code"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "user": record.Profile})
}
