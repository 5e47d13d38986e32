package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/AlexTLDR/partyplanner/internal/config"
	"github.com/AlexTLDR/partyplanner/internal/remote"
	"github.com/AlexTLDR/partyplanner/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	log.SetPrefix("[WEB] ")

	// Load .env file (ignore error if a file doesn't exist)
	// Use Overload to force to overwrite any existing environment variables
	err := godotenv.Overload()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	} else {
		log.Printf(".env file loaded successfully (with overload)")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := remote.New(cfg.BaseURL, cfg.Cohort, nil)
	log.Printf("Reading parties from %s", client.Endpoint())

	// Create and start the server
	srv := server.New(cfg, client)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting server on :%s", cfg.Port)
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	log.Printf("Server stopped")
}
