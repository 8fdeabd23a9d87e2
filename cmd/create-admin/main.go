package main

import (
	"context"
	"flag"
	"log"

	"github.com/clockdesk/timeclock-backend-go/internal/config"
	"github.com/clockdesk/timeclock-backend-go/internal/domain/auth"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/validator"
	"github.com/clockdesk/timeclock-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account so the dashboard can be logged into on a fresh
// install.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	role := flag.String("role", "admin", "admin role")
	flag.Parse()

	if !validator.IsValidEmail(*email) {
		log.Fatal("a valid -email is required")
	}
	if len(*password) < 8 {
		log.Fatal("-password must be at least 8 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	repo := postgresql.NewAdminUserRepository(db)
	admin, err := repo.Create(context.Background(), auth.AdminUser{
		Email:        *email,
		PasswordHash: string(hash),
		Role:         *role,
	})
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("created admin %s (%s)", admin.Email, admin.ID)
}
