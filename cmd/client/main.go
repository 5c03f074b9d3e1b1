package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/Mag-Tataho/heAIthy/internal/client"
	"github.com/Mag-Tataho/heAIthy/internal/client/cli"
	"github.com/Mag-Tataho/heAIthy/internal/config"
	"github.com/Mag-Tataho/heAIthy/internal/plan"
)

func main() {
	serverURL := flag.String("server", "http://localhost:3000", "backend base URL")
	dataFile := flag.String("data", defaultDataFile(), "path to the local state file")
	flag.Parse()

	// The client shares the server's env surface so the admin credential and
	// demo codes stay in sync for offline use.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	local, err := client.NewLocalStore(*dataFile)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	gateway := client.NewGateway(local, client.GatewayOptions{
		BaseURL:       *serverURL,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		DemoCodes:     cfg.DemoLicenseCodes,
	})

	session := client.NewSession(gateway, plan.Canned{}, local)

	app := cli.NewApp(session, gateway)
	app.Run(context.Background())
}

func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "healthy.json"
	}
	return filepath.Join(home, ".healthy.json")
}
