// Command partyapi serves the events, guests and rsvps collections from a
// local database, for running the planner without the hosted backend.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/AlexTLDR/partyplanner/internal/config"
	"github.com/AlexTLDR/partyplanner/internal/database"
	"github.com/AlexTLDR/partyplanner/internal/partyapi"
)

func main() {
	log.SetPrefix("[API] ")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.LoadAPI()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("API failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.APIConfig) (err error) {
	db, err := database.New(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	if err := db.Migrate(ctx); err != nil {
		return multierr.Append(err, db.Close())
	}
	if cfg.Seed {
		if err := db.Seed(ctx, database.DefaultFixture, cfg.PhoneRegion); err != nil {
			return multierr.Append(err, db.Close())
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           partyapi.NewRouter(db, cfg.Cohort),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("api listening on :%s/api/%s", cfg.Port, cfg.Cohort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return multierr.Append(err, db.Close())
	case <-ctx.Done():
	}

	log.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = multierr.Combine(srv.Shutdown(shutdownCtx), db.Close())
	if listenErr := <-errCh; !errors.Is(listenErr, http.ErrServerClosed) {
		err = multierr.Append(err, listenErr)
	}
	return err
}
