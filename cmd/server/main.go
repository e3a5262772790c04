package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/greenloop/plantcare/internal/config"
	"github.com/greenloop/plantcare/internal/database"
	"github.com/greenloop/plantcare/internal/handlers"
	"github.com/greenloop/plantcare/internal/middleware"
	"github.com/greenloop/plantcare/internal/types"
	"github.com/greenloop/plantcare/internal/weather"

	_ "github.com/greenloop/plantcare/docs/api" // Swagger docs
)

// @title Plantcare API
// @version 1.0.0
// @description Plant catalog, tracking, and care recommendation service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/greenloop/plantcare

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Optionally seed the catalog for a fresh database
	if cfg.SeedCatalog {
		if err := database.SeedCatalog(db); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("plantcare")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	auth := middleware.AuthUser(cfg)

	// Create handlers
	plantHandler := &handlers.PlantHandler{DB: db}
	trackingHandler := &handlers.TrackingHandler{DB: db}
	growthHandler := &handlers.GrowthHandler{DB: db}
	healthHandler := &handlers.HealthMonitoringHandler{DB: db}
	careHandler := &handlers.CareHandler{DB: db}
	articleHandler := &handlers.ArticleHandler{DB: db}
	profileHandler := &handlers.ProfileHandler{DB: db}
	weatherHandler := &handlers.WeatherHandler{
		Provider: weather.NewProvider(cfg.WeatherAPIURL, cfg.WeatherAPIKey),
	}

	// Catalog routes
	api.Get("/plants/search", auth, plantHandler.SearchPlants)
	api.Get("/plants", auth, plantHandler.ListPlants)

	// Tracking routes
	api.Post("/plant-tracking/add", auth, trackingHandler.AddTracking)
	api.Delete("/plant-tracking/remove/:id", auth, trackingHandler.RemoveTracking)
	api.Get("/plant-tracking", auth, trackingHandler.ListTracking)

	// Growth log routes (the static /tracked segment must precede :trackingId)
	api.Get("/growth-logs/tracked", auth, trackingHandler.ListTrackedForLogs)
	api.Post("/growth-logs/add", auth, growthHandler.AddGrowthLog)
	api.Delete("/growth-logs/remove/:id", auth, growthHandler.RemoveGrowthLog)
	api.Get("/growth-logs/:trackingId", auth, growthHandler.ListGrowthLogs)

	// Health monitoring routes
	api.Post("/health-monitoring/add", auth, healthHandler.AddHealthRecord)
	api.Delete("/health-monitoring/remove/:id", auth, healthHandler.RemoveHealthRecord)
	api.Get("/health-monitoring/:trackingId", auth, healthHandler.ListHealthRecords)

	// Plant care routes (taxonomy and auto-suggest are public)
	api.Get("/plant-care/locations", careHandler.GetTaxonomy)
	api.Get("/plant-care/auto-suggest", careHandler.AutoSuggest)
	api.Get("/plant-care/recommendations", auth, careHandler.GetRecommendations)

	// Weather proxy (public; the provider key stays server-side)
	api.Get("/weather", weatherHandler.GetWeather)

	// Editorial content (public)
	api.Get("/articles", articleHandler.ListArticles)
	api.Get("/articles/:id", articleHandler.GetArticle)

	// Profile routes
	api.Get("/users/profile", auth, profileHandler.GetProfile)
	api.Put("/users/profile", auth, profileHandler.SetProfile)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Authorizer is initialized on the first authenticated request
	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	kind := "unknown"

	var appErr *types.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
		kind = appErr.Kind
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      kind,
	})
}
