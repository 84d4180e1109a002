package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartcampus/campus-api/internal/ai"
	"github.com/smartcampus/campus-api/internal/config"
	"github.com/smartcampus/campus-api/internal/logger"
	"github.com/smartcampus/campus-api/internal/server"
	"github.com/smartcampus/campus-api/internal/store"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Server.LogLevel)
	log := logger.Get()

	ctx := context.Background()

	// Both external handles are constructed exactly once. A store that fails
	// to initialize stays nil and every dependent view reports it; the
	// completion adapter degrades to its fallback instead.
	var documents store.Store
	if fs, err := store.NewFirestore(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.AppID); err != nil {
		log.Error("Firestore setup failed, data views will report the store as unavailable", "error", err)
	} else {
		documents = fs
		defer fs.Close()
	}

	completer := ai.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)

	srv := server.New(cfg, documents, completer)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}

	log.Info("Server exited")
}
