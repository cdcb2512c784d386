package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nickgalis/restful-task-manager/internal/config"
	api "github.com/nickgalis/restful-task-manager/internal/http"
	"github.com/nickgalis/restful-task-manager/internal/logger"
	"github.com/nickgalis/restful-task-manager/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", "error", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(db),
	}

	go func() {
		logger.Info("task manager listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("shutdown complete")
}
