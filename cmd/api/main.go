package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"pagelift/internal/ai"
	"pagelift/internal/auth"
	"pagelift/internal/config"
	"pagelift/internal/database"
	"pagelift/internal/database/migration"
	handlers "pagelift/internal/http/handler"
	"pagelift/internal/http/middleware"
	"pagelift/internal/otel"
	"pagelift/internal/repository/postgres"
	"pagelift/internal/service"
	"pagelift/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing first so DB and HTTP instrumentation attach to a real provider
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// PostgreSQL connection (pooled via database/sql, instrumented with otelsql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// S3-compatible object storage for uploaded content assets
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// LLM client for page generation
	generator, err := ai.NewGemini(ctx, cfg.Gemini)
	if err != nil {
		log.Fatalf("failed to initialize generator: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserPostgres(db)
	brandRepo := postgres.NewBrandPostgres(db)
	docRepo := postgres.NewDocumentPostgres(db)
	pageRepo := postgres.NewPagePostgres(db)
	viewRepo := postgres.NewViewPostgres(db)

	// Services
	brandSvc := service.NewBrandService(brandRepo)
	contentSvc := service.NewContentService(objStore, docRepo)
	pageSvc := service.NewPageService(pageRepo, viewRepo)
	analyticsSvc := service.NewAnalyticsService(viewRepo, pageRepo)
	generatorSvc := service.NewGeneratorService(generator, brandRepo)

	// Auth
	sessions := auth.NewSessions(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)
	oauthClient := auth.NewOAuth(cfg.Auth)
	authHandler := handlers.NewAuthHandler(oauthClient, sessions, userRepo, cfg.Auth.SecureCookies)

	// Metrics registry with process/go collectors plus the HTTP middleware
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:        db,
		Sessions:  sessions,
		Auth:      authHandler,
		Brands:    brandSvc,
		Content:   contentSvc,
		Pages:     pageSvc,
		Analytics: analyticsSvc,
		Generator: generatorSvc,
		Metrics:   registry,
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
