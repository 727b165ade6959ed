package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"

	"skatejournal/internal/config"
	"skatejournal/internal/database"
	"skatejournal/internal/handlers"
	"skatejournal/internal/logger"
	"skatejournal/internal/metrics"
	"skatejournal/internal/reminder"
	"skatejournal/internal/report"
	"skatejournal/internal/repository"
	"skatejournal/internal/security"
	"skatejournal/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	status := handlers.NewStartupStatus(
		handlers.StepDatabase,
		handlers.StepMigrations,
		handlers.StepServices,
		handlers.StepScheduler,
	)

	// Initialize database with config (supports sqlite, postgres, mysql)
	status.SetCurrentStep(handlers.StepDatabase)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()
	status.CompleteStep(handlers.StepDatabase)
	log.Info("database connection established", "type", cfg.DatabaseType)

	// Run migrations
	status.SetCurrentStep(handlers.StepMigrations)
	applied, err := db.RunMigrations()
	if err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}
	status.CompleteStep(handlers.StepMigrations)
	log.Info("migrations completed", "applied", len(applied))

	// Initialize repositories
	status.SetCurrentStep(handlers.StepServices)
	profileRepo := repository.NewProfileRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	jumpRepo := repository.NewJumpRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	weeklyRepo := repository.NewWeeklyGoalRepository(db)

	// Initialize services
	journalService := service.NewJournalService(profileRepo, journalRepo, trainingRepo, jumpRepo, log)
	goalService := service.NewGoalService(goalRepo, weeklyRepo, log)
	progressService := service.NewProgressService(profileRepo, journalRepo, trainingRepo, jumpRepo, goalRepo, weeklyRepo)
	backupService := service.NewBackupService(db, log)
	emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppName, cfg.AppBaseURL, cfg.EmailDebug, log)
	if err != nil {
		log.Fatal("failed to initialize email service", "error", err)
	}
	appMetrics := metrics.New()
	status.CompleteStep(handlers.StepServices)

	// Initialize handlers
	limiter := security.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx.Done(), time.Minute)

	middleware := handlers.NewMiddleware(security.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer), limiter, log)
	router := handlers.NewRouter(middleware, handlers.Handlers{
		Journal:  handlers.NewJournalHandler(journalService, log),
		Goals:    handlers.NewGoalHandler(goalService, log),
		Progress: handlers.NewProgressHandler(progressService, log),
		Reports:  handlers.NewReportHandler(progressService, backupService, report.NewRenderer(cfg.AppName), cfg.AppName, log),
		Health:   handlers.NewHealthHandler(status, db),
	})
	router.Handle("GET /metrics", metrics.BasicAuth(cfg.MetricsUser, cfg.MetricsPass, appMetrics.Handler()))

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length", "Content-Disposition", "X-Request-ID"}),
	)

	// Start reminder scheduler
	status.SetCurrentStep(handlers.StepScheduler)
	if emailService.IsEnabled() {
		scheduler := reminder.NewScheduler(profileRepo, journalService, progressService, emailService, appMetrics, cfg.ReminderInterval, log)
		go scheduler.Run(ctx)
	} else {
		log.Info("reminder scheduler not started: email disabled")
	}
	status.CompleteStep(handlers.StepScheduler)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      corsHandler(handlers.Chain(router, middleware, appMetrics)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()
	status.MarkReady()

	// Wait for interrupt signal
	<-ctx.Done()
	log.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
}
