package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/auth"
	"storefront/internal/db"
	"storefront/internal/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	logger.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	interval := 10 * time.Minute
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid SWEEP_INTERVAL")
		}
		interval = d
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgDB, err := db.ConnectPostgres(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("postgres")
	}
	defer pgDB.Close()

	// Only the repository side of the service is used here.
	sessions := auth.NewService(auth.NewPostgresSessionRepository(pgDB), "", 0)

	log.Info().Dur("interval", interval).Msg("session sweeper running")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			n, err := sessions.SweepExpired(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("sweep expired sessions")
				continue
			}
			if n > 0 {
				log.Info().Int64("deleted", n).Msg("expired admin sessions removed")
			}
		}
	}
}
