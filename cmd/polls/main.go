package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"polls-api/internal/config"
	"polls-api/internal/http-server/handlers/admin"
	"polls-api/internal/http-server/handlers/choice"
	"polls-api/internal/http-server/handlers/question"
	"polls-api/internal/lib/logger"
	"polls-api/internal/lib/logger/sl"
	adminservice "polls-api/internal/service/admin"
	"polls-api/internal/service/poll"
	"polls-api/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env)

	log.Debug("initializing server...", slog.String("addr", cfg.Address), slog.String("env", cfg.Env))

	// Init storage
	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("error opening storage", sl.Error(err))
		os.Exit(1)
	}
	defer storage.Close()

	// Init service layer
	pollService := poll.New(log, storage)
	adminService := adminservice.New(log, storage, cfg.TokenTTL)

	// Handlers and middleware
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/questions", question.New(log, pollService, cfg.Secret).Register())
	r.Route("/choices", choice.New(log, pollService, cfg.Secret).Register())
	r.Route("/admin", admin.New(log, adminService, cfg.Secret).Register())

	srv := http.Server{
		Handler:      r,
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Debug("server initialized")
	log.Info("server is running...")

	// Gracefully shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting server", sl.Error(err))
		}
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to stop server", sl.Error(err))
		return
	}

	log.Info("server stopped")
}
