package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/oksasatya/finance-tracker-api/config"
	"github.com/oksasatya/finance-tracker-api/internal/application"
	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/domain/repository"
	pginfra "github.com/oksasatya/finance-tracker-api/internal/infrastructure/postgres"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	email := flag.String("email", "demo@example.com", "demo user email")
	password := flag.String("password", "DemoPass123", "demo user password")
	name := flag.String("name", "Demo User", "demo user name")
	flag.Parse()

	if err := application.CheckPassword(*password); err != nil {
		log.Fatalf("password rejected: %v", err)
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	repo := pginfra.NewUserRepository(pool)

	hash, err := helpers.NewPasswordHasher(config.BcryptCost).Hash(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	addr := application.NormalizeEmail(*email)
	u, err := repo.FindByEmail(ctx, addr)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		u = &entity.User{
			ID:            uuid.NewString(),
			Email:         addr,
			PasswordHash:  hash,
			Name:          *name,
			IsActive:      true,
			RefreshTokens: []entity.RefreshToken{},
		}
		if err := repo.Create(ctx, u); err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
		fmt.Printf("seeded user: id=%s email=%s name=%s password=%s\n", u.ID, u.Email, u.Name, *password)
	case err != nil:
		log.Fatalf("failed to look up user: %v", err)
	default:
		// reset the existing demo account to a known state
		u.PasswordHash = hash
		u.Name = *name
		u.IsActive = true
		u.RemoveAllRefreshTokens()
		if err := repo.Save(ctx, u); err != nil {
			log.Fatalf("failed to reset user: %v", err)
		}
		fmt.Printf("reset user: id=%s email=%s name=%s password=%s\n", u.ID, u.Email, u.Name, *password)
	}
}
