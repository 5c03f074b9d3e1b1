package main

import (
	"log"

	"github.com/Mag-Tataho/heAIthy/internal/config"
	"github.com/Mag-Tataho/heAIthy/internal/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes. All state is in memory and resets on restart.
	routes.RegisterRoutes(app, cfg)

	// 3. Start Server
	log.Printf("heAIthy backend starting on port %s", cfg.Port)
	log.Printf("Admin login: %s", cfg.AdminEmail)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
