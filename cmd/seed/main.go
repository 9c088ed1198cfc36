// Command main bootstraps the devlog database with an admin user.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"devlog/internal/auth"
	"devlog/internal/config"
	"devlog/internal/database"
	"devlog/internal/models"
	"devlog/internal/repository"

	"github.com/google/uuid"
)

func main() {
	email := flag.String("email", "", "Admin email (required)")
	password := flag.String("password", "", "Admin password (required)")
	name := flag.String("name", "Admin", "Admin display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := repository.NewUserRepository(db)

	existing, err := users.GetByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}
	if existing != nil {
		log.Printf("User %s already exists, nothing to do", *email)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        *email,
		PasswordHash: auth.HashPassword(*password, cfg.PasswordSalt),
		Name:         *name,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("Created admin user %s (%s)", user.Email, user.ID)
}
