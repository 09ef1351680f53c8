package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vocabree/vocabree-server/internal/api"
	"github.com/vocabree/vocabree-server/internal/config"
	"github.com/vocabree/vocabree-server/internal/content"
	"github.com/vocabree/vocabree-server/internal/db"
	"github.com/vocabree/vocabree-server/internal/lesson"
	"github.com/vocabree/vocabree-server/internal/logger"
	"github.com/vocabree/vocabree-server/internal/repository"
	"github.com/vocabree/vocabree-server/internal/repository/memory"
	"github.com/vocabree/vocabree-server/internal/repository/sqlite"
	"github.com/vocabree/vocabree-server/internal/services"
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
	log.Info("Vocabree Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("demo_mode=%t", cfg.DemoMode)

	provider := content.NewStaticProvider()

	var (
		profiles repository.ProfileRepository
		progress repository.ProgressRepository
	)
	if cfg.DemoMode {
		log.Info("demo mode enabled, using seeded in-memory stores")
		profiles, progress = memory.NewDemoStores(provider)
	} else {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			log.Error("failed to open database: %v", err)
			os.Exit(1)
		}
		defer func() {
			log.Debug("closing database connection")
			database.Close()
		}()
		profiles = sqlite.NewProfileRepository(database.DB)
		progress = sqlite.NewProgressRepository(database.DB)
	}

	// Initialize services
	generator := lesson.NewGenerator(provider)
	profileService := services.NewProfileService(profiles)
	progressService := services.NewProgressService(profiles, progress, provider)
	lessonService := services.NewLessonService(generator, progressService, provider,
		rand.New(rand.NewSource(time.Now().UnixNano())))

	srv := &api.Server{
		ProfileService:  profileService,
		ProgressService: progressService,
		LessonService:   lessonService,
	}

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
	log.Info("received signal %v, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed: %v", err)
	}
	log.Info("server stopped")
}
