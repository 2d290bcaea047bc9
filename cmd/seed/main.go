package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"ascend/internal/auth"
	"ascend/internal/config"
	"ascend/internal/db"
	"ascend/internal/model"
	"ascend/internal/repository"
)

// seedUser is a demo fixture inserted with a properly hashed password.
type seedUser struct {
	Name     string
	Email    string
	Password string
}

var seedUsers = []seedUser{
	{Name: "Ann", Email: "ann@example.com", Password: "pw123"},
	{Name: "Bob", Email: "bob@example.com", Password: "hunter2"},
	{Name: "Carol", Email: "carol@example.com", Password: "correct-horse"},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, item := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, item.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error checking user %s: %v", item.Email, err)
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", item.Email)
			skipped++
			continue
		}

		hashed, err := hasher.Hash(item.Password)
		if err != nil {
			log.Fatalf("Error hashing password for %s: %v", item.Email, err)
		}

		user := &model.User{
			Name:         item.Name,
			Email:        item.Email,
			PasswordHash: hashed,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Error creating user %s: %v", item.Email, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}
