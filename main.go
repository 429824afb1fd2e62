package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ai8v/coursepage/api"
	"github.com/ai8v/coursepage/assistant"
	"github.com/ai8v/coursepage/catalog"
	"github.com/ai8v/coursepage/config"
	"github.com/ai8v/coursepage/policy"
	"github.com/ai8v/coursepage/ratings"
	"github.com/ai8v/coursepage/render"
	"github.com/ai8v/coursepage/store"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	log.Printf("Starting course page service...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Ratings URL: %s", cfg.RatingsURL)
	log.Printf("Assistant URL: %s", cfg.AssistantURL)

	// Course catalog
	cat := catalog.Default()

	// Transcript store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL, cfg.ChatMaxHistory)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Upstream clients
	ratingsClient := ratings.NewClient(cfg.RatingsURL)
	assistantClient := assistant.NewClient(cfg.AssistantURL, cfg.AssistantAPIKey, cfg.AssistantTimeout)

	// Chat guard policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Page renderer
	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	// Handlers
	h := api.NewHandler(cat, renderer, ratingsClient, assistantClient, policyEngine, db, cfg)

	// Create Echo server
	server := echo.New()
	server.HideBanner = true

	// Middleware
	server.Use(middleware.Logger())
	server.Use(middleware.Recover())
	server.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(server)
	server.Static("/assets", "assets")

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Course page service started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down course page service...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Course page service stopped")
}
