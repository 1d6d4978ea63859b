package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unclip12/focusflow/internal/api"
	"github.com/unclip12/focusflow/internal/config"
	"github.com/unclip12/focusflow/internal/db"
	"github.com/unclip12/focusflow/internal/gemini"
	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/repository/sqlite"
	"github.com/unclip12/focusflow/internal/services"
	"github.com/unclip12/focusflow/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("FocusFlow Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("gemini_model=%s", cfg.GeminiModel)
	log.Debug("checklist_worker_count=%d", cfg.ChecklistWorkerCount)
	log.Debug("checklist_queue_size=%d", cfg.ChecklistQueueSize)
	log.Debug("forecast_days=%d", cfg.ForecastDays)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	sessionRepo := sqlite.NewSessionRepository(database.DB)
	kbRepo := sqlite.NewKnowledgeBaseRepository(database.DB)
	planRepo := sqlite.NewPlanRepository(database.DB)

	// Initialize worker pool
	checklistPool := worker.NewPool(cfg.ChecklistWorkerCount, cfg.ChecklistQueueSize)

	// Checklist generation degrades to a canned fallback without an API key.
	var geminiClient gemini.ClientInterface
	if cfg.GeminiAPIKey != "" {
		geminiClient = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Warn("GEMINI_API_KEY not set, checklist generation will use fallback items")
	}

	// Initialize services
	kbService := services.NewKnowledgeBaseService(kbRepo)
	planService := services.NewPlanService(planRepo, kbService)
	studyService := services.NewStudyService(sessionRepo, kbService, planService)
	checklistService := services.NewChecklistService(geminiClient)
	statsService := services.NewStatsService(sessionRepo)

	srv := &api.Server{
		StudyService:         studyService,
		KnowledgeBaseService: kbService,
		PlanService:          planService,
		ChecklistService:     checklistService,
		StatsService:         statsService,
		ChecklistPool:        checklistPool,
		Ping:                 database.Ping,
	}

	ctx, cancel := context.WithCancel(context.Background())
	checklistPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel worker context
	log.Debug("stopping worker pool")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for workers to finish
	checklistPool.Stop()

	log.Info("===========================================")
	log.Info("FocusFlow Server Stopped")
	log.Info("===========================================")
}
