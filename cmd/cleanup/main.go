// Package main provides the daily event cleanup job. The hosting platform's
// scheduler runs it once a day shortly after midnight.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	bandRepository "github.com/declanmoran/omahonys-pub/internal/band/repository"
	"github.com/declanmoran/omahonys-pub/internal/cleanup"
	"github.com/declanmoran/omahonys-pub/internal/config"
	"github.com/declanmoran/omahonys-pub/internal/database"
	matchRepository "github.com/declanmoran/omahonys-pub/internal/match/repository"
	"github.com/declanmoran/omahonys-pub/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck // flushing on exit

	venueCfg := config.LoadVenueConfigFromEnv()
	loc, err := venueCfg.Location()
	if err != nil {
		zlog.Fatalw("failed to resolve venue timezone", "error", err)
	}

	db, err := database.New(config.LoadDatabaseConfigFromEnv())
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close(db) //nolint:errcheck // closing on exit

	svc := cleanup.New(matchRepository.New(db), bandRepository.New(db), loc, zlog)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	res, err := svc.Run(ctx)
	if err != nil {
		zlog.Errorw("cleanup failed", "error", err,
			"matches_deleted", res.MatchesDeleted,
			"bands_deleted", res.BandsDeleted,
		)
		os.Exit(1)
	}

	zlog.Infow("cleanup completed",
		"date", res.Date,
		"matches_deleted", res.MatchesDeleted,
		"bands_deleted", res.BandsDeleted,
	)
}
