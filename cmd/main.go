package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnthoniusHendriyanto/auth-gate/config"
	"github.com/AnthoniusHendriyanto/auth-gate/db"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/handler"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/repository/memory"
	mongorepo "github.com/AnthoniusHendriyanto/auth-gate/internal/auth/repository/mongo"
	repo "github.com/AnthoniusHendriyanto/auth-gate/internal/auth/repository/postgres"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/service"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userRepo, closeStore, err := newUserRepository(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialise credential store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenExpiry(), cfg.JWTIssuer)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	userService := service.NewUserService(userRepo, hasher, tokenService)
	authHandler := handler.NewAuthHandler(userService, service.NewAccessGate(tokenService), log)
	healthHandler := handler.NewHealthHandler(userRepo, log)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(handler.RequestLogger(log))
	handler.RegisterRoutes(app, authHandler, healthHandler)

	go func() {
		<-ctx.Done()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout())
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout()); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("server started", "port", cfg.Port, "env", cfg.Env, "store", cfg.StoreDriver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
	}
}

func newUserRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (domain.UserRepository, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, err := db.NewMongoClient(connectCtx, cfg.MongoURL)
		if err != nil {
			return nil, nil, err
		}
		r := mongorepo.NewMongoRepository(client.Database(cfg.MongoDatabase))
		if err := r.EnsureIndexes(connectCtx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return r, func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("error closing MongoDB connection", "error", err)
			}
		}, nil

	case config.StoreDriverMemory:
		log.Warn("using in-memory credential store; users are lost on restart")
		return memory.NewRepository(), func() {}, nil

	default:
		pool, err := db.NewPostgresPool(connectCtx, cfg.DBURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(connectCtx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("database migrations applied")
		return repo.NewPostgresRepository(pool), pool.Close, nil
	}
}
