package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"githubActivityFeed/internal/config"
	"githubActivityFeed/internal/events"
	"githubActivityFeed/internal/github"
	"githubActivityFeed/internal/handlers"
	"githubActivityFeed/internal/logger"
	"githubActivityFeed/internal/middleware"
	"githubActivityFeed/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger.InitLogger(cfg.LogLevel)
	defer logger.Lg.Sync()

	db, rdb, err := store.Open(context.Background(), cfg)
	if err != nil {
		logger.Lg.Error("store open", zap.Error(err))
		os.Exit(1)
	}

	client := github.NewClient(cfg.GitHubURL, github.WithTimeout(cfg.HTTPTimeout))
	svc := events.NewService(client, events.NewRepo(db, rdb), cfg.ReportCacheTTL)

	app := fiber.New()
	app.Use(middleware.RequestLogger(logger.Lg))
	h := handlers.NewHTTP(svc)

	// endpoints
	app.Get("/users/:username/events", h.GetUserEvents)
	app.Get("/lookups", h.GetLookups)

	go func() {
		if err := app.Listen(cfg.ServerAddr); err != nil {
			logger.Lg.Info("Server stopped", zap.Error(err))
		}
	}()

	GracefulShutdown(app, db, rdb)
	logger.Lg.Info("Shutdown complete")
}

func GracefulShutdown(app *fiber.App, db *sql.DB, rdb *redis.Client) {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	<-sigchan
	logger.Lg.Info("Shutdown sig rcv")
	if err := app.Shutdown(); err != nil {
		logger.Lg.Error("Server shutdown error", zap.Error(err))
	}
	if err := store.Close(db, rdb); err != nil {
		logger.Lg.Error("store close error", zap.Error(err))
	}
}
