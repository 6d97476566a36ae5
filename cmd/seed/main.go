// Seeds storage with an admin account so a fresh deployment can manage the
// catalog immediately. Safe to run more than once.
package main

import (
	"context"
	"fmt"
	"os"

	"gospel-keys/internal/repo/persistent"
	"gospel-keys/internal/usecase"
	"gospel-keys/pkg/config"
	"gospel-keys/pkg/jwt"
	"gospel-keys/pkg/kvstore"
	"gospel-keys/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	client, err := kvstore.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		os.Exit(1)
	}
	store := kvstore.NewRedisStore(client, log)

	authUseCase := usecase.NewLocalAuthUseCase(
		persistent.NewUserRepository(store),
		persistent.NewSessionRepository(store),
		jwt.NewService(cfg.JWTSecret),
		usecase.NewPasswordHasher(cfg.PasswordSalt),
		cfg.AdminCode,
		cfg.SessionDuration,
		log,
	)

	ctx := context.Background()
	username := getEnv("SEED_ADMIN_USERNAME", "admin")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Error("SEED_ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	user, _, err := authUseCase.Register(ctx, usecase.RegisterInput{
		Username:  username,
		Email:     getEnv("SEED_ADMIN_EMAIL", "admin@gospelkeys.dev"),
		Password:  password,
		AdminCode: cfg.AdminCode,
	})
	if err != nil {
		log.Warn("Admin account not created: %v", err)
		return
	}

	// Seeding should not leave a live session behind
	authUseCase.Logout(ctx)

	fmt.Printf("Seeded admin account %s (%s)\n", user.Username, user.ID)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
