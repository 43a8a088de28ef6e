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

	"github.com/backend101/tasks-api/internal/config"
	handlers "github.com/backend101/tasks-api/internal/http"
	"github.com/backend101/tasks-api/internal/logger"
	"github.com/backend101/tasks-api/internal/middleware"
	"github.com/backend101/tasks-api/internal/repository"
	"github.com/backend101/tasks-api/internal/service"
)

func main() {
	logrusLogger := logger.Init("tasks")

	cfg, err := config.Load()
	if err != nil {
		logrusLogger.WithError(err).Fatal("failed to load config")
	}

	// The store lives for the lifetime of the process and is injected into
	// the service rather than accessed as a package-level singleton.
	repo := repository.NewMemoryTaskRepository()
	taskService := service.NewTaskService(repo)
	taskHandler := handlers.NewTaskHandler(taskService, logrusLogger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks/{$}", taskHandler.ListTasks)
	mux.HandleFunc("POST /tasks/{$}", taskHandler.CreateTask)
	mux.HandleFunc("GET /tasks/{id}", taskHandler.GetTask)
	mux.HandleFunc("PUT /tasks/{id}", taskHandler.UpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", taskHandler.DeleteTask)
	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	// Middleware chain (order matters)
	handler := middleware.RequestIDMiddleware(mux)
	handler = middleware.SecurityHeadersMiddleware(handler)
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.TasksPort),
		Handler: handler,
	}

	go func() {
		logrusLogger.WithField("port", cfg.TasksPort).Info("tasks service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrusLogger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrusLogger.Info("Shutting down tasks service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrusLogger.WithError(err).Error("graceful shutdown failed")
	}
}
