// Package server boots the FreshPress API: config, database, cache,
// middleware stack, routes, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/app/routes"
	"github.com/freshpress/freshpress/config"
	"github.com/freshpress/freshpress/pkg/cache"
	"github.com/freshpress/freshpress/pkg/database"
	"github.com/freshpress/freshpress/pkg/logger"
	"github.com/freshpress/freshpress/pkg/metrics"
	"github.com/freshpress/freshpress/pkg/middleware"
	"github.com/freshpress/freshpress/pkg/reqid"
	"github.com/freshpress/freshpress/pkg/router"
)

// Start boots every dependency and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := database.DB.AutoMigrate(
		&models.User{}, &models.Customer{}, &models.ServiceItem{},
		&models.Order{}, &models.OrderItem{},
	); err != nil {
		return err
	}

	// Redis is best-effort: cached reads fall through to the DB.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	logger.Info("freshpress api listening", "addr", srv.Addr, "env", config.AppEnv())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler builds the full middleware stack and API routes.
// Exposed separately so tests can serve it via httptest.
func Handler() http.Handler {
	r := router.New()

	// Outermost → innermost:
	// metrics first for accurate total latency, recovery before anything
	// that can panic, request ID before the logger that reads it.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r)

	return r.Handler()
}
