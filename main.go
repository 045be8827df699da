package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dailyink/blog-backend/api"
	"github.com/dailyink/blog-backend/config"
	"github.com/dailyink/blog-backend/database"
	"github.com/dailyink/blog-backend/models"
	"github.com/dailyink/blog-backend/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, reading from environment")
	}

	cfg := config.New()

	db, err := openDatabase(config.GetString(cfg, "DATABASE_URL", "sqlite://blog.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	currentDB := database.New(db)

	if err := seedAdmin(cfg, currentDB); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed bootstrap admin")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase picks the dialector from the DATABASE_URL prefix:
// postgres://… for production, sqlite://<path> for local development.
func openDatabase(dbURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch {
	case strings.HasPrefix(dbURL, "postgres://"):
		dsn := strings.TrimPrefix(dbURL, "postgres://")
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
		log.Info().Msg("Connecting to PostgreSQL database...")
	case strings.HasPrefix(dbURL, "sqlite://"):
		dsn := strings.TrimPrefix(dbURL, "sqlite://")
		dialector = sqlite.Open(dsn)
		log.Info().Str("path", dsn).Msg("Connecting to SQLite database")
	default:
		return nil, fmt.Errorf("invalid DATABASE_URL prefix, must start with postgres:// or sqlite://")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	return db, nil
}

// seedAdmin creates the very first admin account from the environment. The
// application itself can only mint admins through an already-authenticated
// admin, so this is the operational entry point for the bootstrap account.
func seedAdmin(cfg map[string]string, db database.Database) error {
	email := config.GetString(cfg, "ADMIN_EMAIL", "")
	password := config.GetString(cfg, "ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Info().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}
	name := config.GetString(cfg, "ADMIN_NAME", "Admin")

	auth := services.NewAuthService(db.UserRepo())
	_, err := auth.EnsureAdmin(context.Background(), name, email, password)
	return err
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
