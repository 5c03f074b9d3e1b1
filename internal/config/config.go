package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults match what the bundled client expects out of the box. Override
// them in any deployment that leaves the demo stage.
const (
	defaultAdminEmail    = "admin@admin.com"
	defaultAdminPassword = "admin123"
	defaultDemoCodes     = "HEALTHY-PRO-2024,ADMIN-TEST"
)

type Config struct {
	Port          string
	AppEnv        string
	AdminEmail    string
	AdminPassword string
	// DemoLicenseCodes are permanently valid, reusable redemption codes.
	DemoLicenseCodes []string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:             getEnv("PORT", "3000"),
		AppEnv:           normalizeEnv(getEnv("APP_ENV", "production")),
		AdminEmail:       getEnv("ADMIN_EMAIL", defaultAdminEmail),
		AdminPassword:    getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		DemoLicenseCodes: splitCodes(getEnv("DEMO_LICENSE_CODES", defaultDemoCodes)),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitCodes(value string) []string {
	parts := strings.Split(value, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
