package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"kabakeh-backend/internal/config"
	"kabakeh-backend/internal/database"
	"kabakeh-backend/internal/handlers"
	customMiddleware "kabakeh-backend/internal/middleware"
	"kabakeh-backend/internal/notify"
	"kabakeh-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Missing admin secrets are not fatal: the affected endpoints answer
	// with a misconfiguration error instead.
	if cfg.AdminPassword == "" {
		log.Println("⚠️  ADMIN_PASSWORD not set — admin login is disabled")
	}
	if cfg.AdminSecret == "" {
		log.Println("⚠️  ADMIN_SECRET not set — admin sessions are disabled")
	}

	// Connect to MongoDB
	db, err := database.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	feedbackRepo := repository.NewFeedbackRepo(db)

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}

	// Pick the feedback notifier: email when Resend is configured, log otherwise
	var notifier notify.Notifier = notify.NewLogNotifier()
	if cfg.ResendAPIKey != "" && cfg.NotifyEmail != "" {
		notifier = notify.NewEmailNotifier(cfg.ResendAPIKey, cfg.FromEmail, cfg.NotifyEmail)
		log.Printf("📧 Feedback notifications go to %s", cfg.NotifyEmail)
	}

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, notifier)
	adminHandler := handlers.NewAdminHandler(cfg)
	menuHandler := handlers.NewMenuHandler(cfg)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"kabakeh-backend"}`))
	})

	// Public routes (no auth required)
	r.Post("/feedback", feedbackHandler.SubmitFeedback)
	r.Post("/admin/login", adminHandler.Login)
	r.Get("/menu", menuHandler.GetMenu)
	r.Get("/settings", menuHandler.GetSettings)

	// Protected routes (admin session cookie required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.AdminAuth(cfg.AdminSecret))

		r.Get("/admin/feedback", feedbackHandler.ListFeedback)
	})

	// Start server
	log.Printf("🚀 Kabakeh backend starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
