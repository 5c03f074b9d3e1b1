package routes

import (
	"github.com/Mag-Tataho/heAIthy/internal/config"
	"github.com/Mag-Tataho/heAIthy/internal/handlers"
	"github.com/Mag-Tataho/heAIthy/internal/services"
	"github.com/Mag-Tataho/heAIthy/internal/store"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config) {
	users := store.NewUserStore()
	licenses := store.NewLicenseRegistry(cfg.DemoLicenseCodes)
	reviews := store.NewReviewQueue()

	entitlements := services.NewEntitlementService(users, licenses, reviews)

	authHandler := handlers.NewAuthHandler(users, cfg.AdminEmail, cfg.AdminPassword)
	paymentHandler := handlers.NewPaymentHandler(entitlements)
	userHandler := handlers.NewUserHandler(users)
	adminHandler := handlers.NewAdminHandler(users, entitlements, reviews)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	payment := api.Group("/payment")
	payment.Post("/submit", paymentHandler.Submit)
	payment.Post("/redeem", paymentHandler.Redeem)

	api.Post("/user/sync", userHandler.Sync)

	admin := api.Group("/admin")
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/reviews", adminHandler.ListReviews)
	admin.Post("/approve", adminHandler.Approve)
}
