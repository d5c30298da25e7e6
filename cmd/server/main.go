package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lifeline/internal/bloodbank/handler"
	"lifeline/internal/bloodbank/metrics"
	"lifeline/internal/bloodbank/service"
	"lifeline/internal/bloodbank/store"
	"lifeline/internal/platform/config"
	"lifeline/internal/platform/httpserver"
	"lifeline/internal/platform/logger"
	"lifeline/internal/platform/middleware"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the bloodbank packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	st := store.New()
	m := metrics.New()
	svc := service.New(st,
		service.WithLogger(log),
		service.WithMetrics(m),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(log))
	r.Use(middleware.ContentTypeJSON)

	handler.New(svc, log).Register(r)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := httpserver.New(cfg.Addr, r)

	log.Info("starting lifeline", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("lifeline stopped")
}
