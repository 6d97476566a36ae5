package main

import (
	"gospel-keys/internal/app"
	"gospel-keys/pkg/config"

	_ "gospel-keys/docs" // Swagger docs
)

// @title           Gospel Keys API
// @version         1.0
// @description     Course catalog, cart and enrollment backend for the Gospel Keys piano lesson store

// @contact.name   API Support
// @contact.email  support@gospelkeys.dev

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
