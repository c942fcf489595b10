package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-hosting/internal/adapter/http"
	repo "resume-hosting/internal/adapter/repository"
	"resume-hosting/internal/infrastructure/migration"
	"resume-hosting/internal/usecase"
	infra "resume-hosting/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	// the backing store must be reachable before the server starts serving
	pool, err := infra.NewPool(ctx)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("database connected")

	if err := migration.RunMigrations(ctx, pool); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	store := repo.NewResumeRepo(pool)
	aggregator := usecase.NewAggregator(store)
	exporter := usecase.NewExporter(aggregator, infra.NewChromedpRenderer())

	app := fiber.New(fiber.Config{
		ErrorHandler: httpadapter.ErrorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	app.Use(recoverer.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     frontendURL(),
		AllowCredentials: true,
	}))
	app.Use("/api", limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	httpadapter.NewHandler(store, aggregator, exporter).Register(app)
	app.Use(httpadapter.NotFound)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		slog.Info("resume API server running", "port", port)
		if err := app.Listen(":" + port); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	_ = app.Shutdown()
}

func frontendURL() string {
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}
