package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"polls-api/internal/config"
	"polls-api/internal/lib/logger"
	"polls-api/internal/lib/logger/sl"
	adminservice "polls-api/internal/service/admin"
	"polls-api/internal/storage/sqlite"
)

func main() {
	name := flag.String("name", "", "admin name")
	password := flag.String("password", "", "admin password")

	cfg := config.MustLoad()

	log := logger.New(cfg.Env)

	if *name == "" || *password == "" {
		log.Error("both -name and -password are required")
		os.Exit(2)
	}

	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("error opening storage", sl.Error(err))
		os.Exit(1)
	}
	defer storage.Close()

	id, err := adminservice.New(log, storage, cfg.TokenTTL).Register(context.Background(), *name, *password)
	if err != nil {
		log.Error("failed to create admin", sl.Error(err))
		storage.Close()
		os.Exit(1)
	}

	log.Info("admin created", slog.Int64("id", id), slog.String("name", *name))
}
