package main

import (
	"log"

	"github.com/joho/godotenv"

	"guardrails/internal/config"
	"guardrails/ui"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] Failed to load configuration: %v", err)
	}

	server := ui.NewServer(cfg)
	if err := server.Run(); err != nil {
		log.Fatalf("[main] Server failed: %v", err)
	}
}
