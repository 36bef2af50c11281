package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tabletalk/internal/config"
	"tabletalk/internal/database"
	"tabletalk/internal/handlers"
	"tabletalk/internal/repository"
	"tabletalk/internal/security"
	"tabletalk/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Seed banned words filter for custom card screening
	if err := db.SeedBannedWords(); err != nil {
		log.Printf("Warning: Failed to seed banned words filter: %v", err)
	}

	// Initialize repositories
	cardRepo := repository.NewCardRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	cardService := service.NewCardService(cardRepo, db)
	gameService := service.NewGameService(sessionRepo, cardService, cfg.SessionID)
	recapService := service.NewRecapService(gameService)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Resume tokens need a stable secret to survive restarts; without one
	// a per-boot secret is generated and existing links stop working.
	tokenSecret := cfg.ResumeTokenSecret
	if tokenSecret == "" {
		tokenSecret = security.GenerateSessionID()
		log.Println("RESUME_TOKEN_SECRET not set; resume tokens will not survive restarts")
	}
	tokens := security.NewTokenManager(tokenSecret, cfg.ResumeTokenTTL)

	// Initialize handlers
	rateLimiter := security.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	middleware := handlers.NewMiddleware(rateLimiter)
	gameHandler := handlers.NewGameHandler(gameService, tokens, cfg.SessionID)
	cardHandler := handlers.NewCardHandler(cardService)
	recapHandler := handlers.NewRecapHandler(recapService, emailService)
	shareHandler := handlers.NewShareHandler(cfg.BaseURL)

	// Set up routes
	mux := http.NewServeMux()

	// Game state machine
	mux.HandleFunc("GET /api/state", gameHandler.GetState)
	mux.HandleFunc("POST /api/game/start", gameHandler.Start)
	mux.HandleFunc("POST /api/game/reset", gameHandler.Reset)
	mux.HandleFunc("POST /api/game/draw", gameHandler.Draw)
	mux.HandleFunc("POST /api/game/reveal", gameHandler.Reveal)
	mux.HandleFunc("POST /api/game/respond", gameHandler.Respond)
	mux.HandleFunc("POST /api/game/edit", gameHandler.Edit)
	mux.HandleFunc("POST /api/game/advance", gameHandler.Advance)
	mux.HandleFunc("POST /api/game/skip", gameHandler.Skip)
	mux.HandleFunc("POST /api/game/reaction", gameHandler.Reaction)
	mux.HandleFunc("POST /api/game/favorite", gameHandler.Favorite)
	mux.HandleFunc("POST /api/game/resume-token", middleware.RateLimit(gameHandler.IssueResumeToken))
	mux.HandleFunc("GET /api/game/resume", middleware.RateLimit(gameHandler.Resume))

	// Card catalog
	mux.HandleFunc("GET /api/cards", cardHandler.ListCards)
	mux.HandleFunc("POST /api/cards", middleware.RateLimit(cardHandler.CreateCard))
	mux.HandleFunc("DELETE /api/cards/{id}", cardHandler.DeleteCard)

	// Recap and sharing
	mux.HandleFunc("GET /api/recap", recapHandler.GetRecap)
	mux.HandleFunc("GET /api/recap/text", recapHandler.GetRecapText)
	mux.HandleFunc("POST /api/recap/email", middleware.RateLimit(recapHandler.EmailRecap))
	mux.HandleFunc("GET /share/qr", shareHandler.QR)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
