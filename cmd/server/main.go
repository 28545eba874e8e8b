package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/jackc/pgx/v5/pgxpool"

	fiberadapter "github.com/leaguebuddies/backend/adapters/fiber"
	"github.com/leaguebuddies/backend/adapters/memory"
	pgxadapter "github.com/leaguebuddies/backend/adapters/pgx"
	"github.com/leaguebuddies/backend/config"
	"github.com/leaguebuddies/backend/core"
	"github.com/leaguebuddies/backend/crypto"
	"github.com/leaguebuddies/backend/services"
	"github.com/leaguebuddies/backend/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store core.CredentialStore
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("pgxpool.New: %v", err)
		}
		defer pool.Close()
		store = pgxadapter.New(pool)
	} else {
		log.Println("LB_DATABASE_URL not set, using in-memory store")
		store = memory.New()
	}

	tokens, err := token.NewService([]byte(cfg.Secret), token.DefaultTTL)
	if err != nil {
		log.Fatalf("token.NewService: %v", err)
	}

	auth := services.NewAuthService(store, crypto.NewArgon2(), tokens)
	profiles := services.NewProfileService(store)

	app := fiber.New()
	app.Use(logger.New())

	fiberadapter.New(auth, profiles, tokens, store).RegisterRoutes(app)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("app.Shutdown: %v", err)
		}
	}()

	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("app.Listen: %v", err)
	}
}
