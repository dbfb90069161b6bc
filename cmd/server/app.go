package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/quizbuster/quizbuster-api/internal/config"
	"github.com/quizbuster/quizbuster-api/internal/platform/logger"
	"github.com/quizbuster/quizbuster-api/internal/platform/postgres"
	"github.com/quizbuster/quizbuster-api/internal/service/auth"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// application bundles the dependencies the HTTP layer needs.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	userStore        store.UserStore
	questionStore    store.QuestionStore
	achievementStore store.AchievementStore
	jwtService       auth.JWTService
	passwordHasher   *auth.BcryptHasher
}

// run wires the application together and serves HTTP until shutdown.
// Startup failures (config, database, migrations) are fatal; main turns
// the returned error into a non-zero exit.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database connection", "error", err)
		}
	}()
	log.Info("database connection established")

	if err := postgres.MigrateUp(db); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	log.Info("database schema up to date")

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config:           cfg,
		logger:           log,
		db:               db,
		userStore:        postgres.NewPostgresUserStore(db),
		questionStore:    postgres.NewPostgresQuestionStore(db),
		achievementStore: postgres.NewPostgresAchievementStore(db),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
	}

	return app.serve(ctx)
}

// openDatabase opens and verifies the application database connection.
func openDatabase(ctx context.Context, dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
