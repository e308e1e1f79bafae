package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/avalero/blog-backend/api"
	"github.com/avalero/blog-backend/auth"
	"github.com/avalero/blog-backend/config"
	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	c := config.New()

	dsn := config.GetString(c, "DATABASE_URL", "")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	if err := database.RunMigration(db); err != nil {
		log.Fatal().Err(err).Msg("Error running migrations")
	}

	currentDB := database.New(db)

	if err := ensureSuperuser(currentDB, c); err != nil {
		log.Fatal().Err(err).Msg("Error bootstrapping superuser")
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

// ensureSuperuser creates the initial superuser from SUPERUSER_USERNAME /
// SUPERUSER_EMAIL / SUPERUSER_PASSWORD when all three are set and no user
// with that username exists yet.
func ensureSuperuser(db database.Database, c map[string]string) error {
	username := config.GetString(c, "SUPERUSER_USERNAME", "")
	email := config.GetString(c, "SUPERUSER_EMAIL", "")
	password := config.GetString(c, "SUPERUSER_PASSWORD", "")
	if username == "" || email == "" || password == "" {
		log.Info().Msg("Superuser environment variables not configured, skipping creation")
		return nil
	}

	existing, err := db.UserRepo().FindByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Msgf("Superuser %q already exists", username)
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     username,
		Email:        &email,
		PasswordHash: hash,
		IsSuperuser:  true,
		IsActive:     true,
	}
	if err := db.UserRepo().Add(user); err != nil {
		return err
	}

	log.Info().Msgf("Superuser %q created successfully", username)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
