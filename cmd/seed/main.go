package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"

	"tutoring-center-backend/internal/config"
	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/security"
	"tutoring-center-backend/internal/seed"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	fixturePath := flag.String("fixture", "", "Path to seed fixture (defaults to seed.fixture_path from config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	path := *fixturePath
	if path == "" {
		path = cfg.Seed.FixturePath
	}
	if path == "" {
		log.Fatalf("No fixture given: pass -fixture or set seed.fixture_path")
	}

	fixture, err := seed.LoadFixture(path)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	res, err := seed.Apply(ctx, db, security.NewPasswordHasher(security.DefaultCost), fixture)
	if err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}

	logger.Info("Seed data populated",
		"fixture", path,
		"users", len(res.UserIDs),
		"memberships", res.Memberships,
		"join_requests", res.JoinRequests,
		"quiz_answers", res.QuizAnswers,
	)
}
