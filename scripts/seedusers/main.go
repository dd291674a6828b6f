package main

import (
	"context"
	"log"

	"github.com/hosteldesk/hosteldesk/internal/adapter/repository"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/infrastructure/database"
	"github.com/hosteldesk/hosteldesk/pkg/config"
)

// Seeds a development database with one admin and one student account.
// Passwords here are for local use only.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Environment == "production" {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	userRepo := repository.NewUserRepository(db)
	ctx := context.Background()

	seed := []struct {
		email    string
		name     string
		password string
		role     entities.UserRole
		faculty  string
		batch    string
	}{
		{"warden@hosteldesk.local", "Hostel Warden", "warden-dev-password", entities.RoleAdmin, "", ""},
		{"student@hosteldesk.local", "Test Student", "student-dev-password", entities.RoleStudent, "Engineering", "2024"},
	}

	for _, s := range seed {
		if _, err := userRepo.FindByEmail(ctx, s.email); err == nil {
			log.Printf("user %s already exists, skipping", s.email)
			continue
		}

		user, err := entities.NewUser(s.email, s.name, s.password, s.role)
		if err != nil {
			log.Fatalf("Failed to build user %s: %v", s.email, err)
		}
		user.Faculty = s.faculty
		user.Batch = s.batch

		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", s.email, err)
		}
		log.Printf("created %s user %s", s.role, s.email)
	}
}
