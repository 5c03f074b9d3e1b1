package handlers

import (
	"errors"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/store"
	"github.com/gofiber/fiber/v2"
)

type accountStore interface {
	Create(name, email, password string) (*models.UserRecord, error)
	FindByCredentials(email, password string) (*models.UserRecord, error)
}

type AuthHandler struct {
	users         accountStore
	adminEmail    string
	adminPassword string
}

func NewAuthHandler(users accountStore, adminEmail, adminPassword string) *AuthHandler {
	return &AuthHandler{
		users:         users,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	record, err := h.users.Create(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.JSON(fiber.Map{"user": record.Profile})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Admin principal short-circuits before any store lookup.
	if req.Email == h.adminEmail && req.Password == h.adminPassword {
		return c.JSON(fiber.Map{"user": models.UserProfile{
			Name:    "Admin",
			Email:   h.adminEmail,
			IsAdmin: true,
		}})
	}

	record, err := h.users.FindByCredentials(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to lookup user"})
	}

	return c.JSON(fiber.Map{"user": record.Profile})
}
