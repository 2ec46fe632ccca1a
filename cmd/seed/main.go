package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/satriadika/auth-service/config"
	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/internal/domain/repository"
	pginfra "github.com/satriadika/auth-service/internal/infrastructure/postgres"
	"github.com/satriadika/auth-service/internal/infrastructure/redisstore"
	"github.com/satriadika/auth-service/pkg/helpers"
)

// Seeds an initial admin account into a durable store backend. /register is
// open but roles are caller-chosen, so a deployment needs one admin to exist
// before role gating means anything.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	username := getenv("SEED_ADMIN_USERNAME", "root")
	password := getenv("SEED_ADMIN_PASSWORD", "adminpw")

	var repo repository.UserRepository
	switch cfg.StoreBackend {
	case "postgres":
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		repo = pginfra.NewUserRepository(pool)
	case "redis":
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		repo = redisstore.NewUserRepository(rdb)
	default:
		log.Fatalf("store backend %q cannot be seeded: it does not outlive this process", cfg.StoreBackend)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			fmt.Printf("admin %q already exists, nothing to do\n", username)
			return
		}
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s username=%s\n", u.ID, u.Username)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
