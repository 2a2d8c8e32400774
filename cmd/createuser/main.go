package main

import (
	"context"
	"flag"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// Users are provisioned out of band; the API surface has no registration
// endpoint. This command creates one account with a bcrypt-hashed password.
func main() {
	username := flag.String("username", "", "account username (required)")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password (required)")
	flag.Parse()

	if *username == "" || *password == "" {
		logger.Error.Fatal("both -username and -password are required")
	}

	cfg := config.LoadConfig()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Error.Fatalf("failed to connect to database: %v", err)
	}
	defer db.CloseDB()

	userRepo := repository.NewUserRepository(db.DB)

	user := &models.User{
		Username: *username,
		Email:    *email,
	}

	if err := userRepo.CreateUser(context.Background(), user, *password); err != nil {
		logger.Error.Fatalf("failed to create user: %v", err)
	}

	logger.Info.Printf("created user %q with id %d", user.Username, user.ID)
}
