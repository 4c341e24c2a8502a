package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vladimirfomene/raggnet/internal/config"
	"github.com/vladimirfomene/raggnet/internal/db"
	"github.com/vladimirfomene/raggnet/internal/model"
	"github.com/vladimirfomene/raggnet/internal/repository"
)

// Seeds the bootstrap super-admin. Role elevation is a super-admin-only
// operation, so the first super-admin has to come from outside the API.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Resource{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	email := getEnv("SUPER_ADMIN_EMAIL", "superadmin@raggnet.local")
	password := getEnv("SUPER_ADMIN_PASSWORD", "change-me-now")
	name := getEnv("SUPER_ADMIN_NAME", "Super Admin")

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check for existing super-admin: %v", err)
	}
	if existing != nil && err == nil {
		if existing.Role == model.RoleSuperAdmin {
			log.Printf("Super-admin %s already exists, nothing to do", email)
			return
		}
		existing.Role = model.RoleSuperAdmin
		if err := users.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to promote existing user: %v", err)
		}
		log.Printf("Promoted existing user %s to super-admin", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleSuperAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create super-admin: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Super-admin created: %s (id %s)", admin.Email, admin.ID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
