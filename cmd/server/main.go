package main

import (
	"flag"
	"log/slog"
	"net/http"

	"github.com/hermitcove/hermitcove/internal/app"
	"github.com/hermitcove/hermitcove/internal/config"
	"github.com/hermitcove/hermitcove/internal/db"
	"github.com/hermitcove/hermitcove/internal/logger"
	"github.com/hermitcove/hermitcove/internal/routes"
)

func main() {
	rollback := flag.Bool("rollback", false, "roll back the most recent database migration and exit")
	flag.Parse()

	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	if *rollback {
		database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			panic(err)
		}
		defer database.Close()

		err = db.MigrateDown(database.DB, cfg.DBDriver)
		if err != nil {
			slog.Error("rollback failed", "error", err)
			panic(err)
		}
		return
	}

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	handler := routes.SetupRoutes(app)
	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)

	err = http.ListenAndServe(":"+cfg.Port, handler)
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
