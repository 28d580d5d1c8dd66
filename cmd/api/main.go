package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/resumatch/ats-scorer/internal/config"
	"github.com/resumatch/ats-scorer/internal/handlers"
	"github.com/resumatch/ats-scorer/internal/middleware"
	"github.com/resumatch/ats-scorer/internal/repositories"
	"github.com/resumatch/ats-scorer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDirs(); err != nil {
		log.Fatalf("❌ Failed to create upload directories: %v", err)
	}

	// Load the English lemmatizer dictionary once for the whole process;
	// it is read-only afterwards and shared by every request.
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		log.Fatalf("❌ Failed to load lemmatizer dictionary: %v", err)
	}
	log.Println("✅ Lemmatizer dictionary loaded")

	// Initialize the scoring pipeline
	extractor := services.NewExtractorService()
	normalizer := services.NewNormalizerService(lemmatizer)
	matcher := services.NewMatcherService()
	scorer := services.NewScoreAggregator()
	analyzer := services.NewAnalyzerService(extractor, normalizer, matcher, scorer)
	log.Println("✅ Scoring pipeline initialized")

	// Initialize auth
	authService := services.NewAuthService(
		userRepo,
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.TokenTTL,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	analyzeHandler := handlers.NewAnalyzeHandler(
		analysisRepo,
		storageService,
		analyzer,
		cfg.Storage.MaxFileSize,
	)
	historyHandler := handlers.NewHistoryHandler(analysisRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Scorer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public endpoints
	api.Post("/register", authHandler.HandleRegister)
	api.Post("/login", authHandler.HandleLogin)

	// Authenticated endpoints
	requireAuth := middleware.RequireAuth(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	api.Post("/analyze", requireAuth, analyzeHandler.HandleAnalyze)
	api.Get("/history", requireAuth, historyHandler.HandleHistory)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Scorer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/register",
				"POST /api/v1/login",
				"POST /api/v1/analyze",
				"GET /api/v1/history",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
