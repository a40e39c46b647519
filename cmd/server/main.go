// Package main runs the storefront HTTP service.
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

	"github.com/joho/godotenv"

	"github.com/ventaroai/storefront/internal/app"
	"github.com/ventaroai/storefront/internal/config"
	"github.com/ventaroai/storefront/internal/httpapi"
	"github.com/ventaroai/storefront/internal/middleware"
	"github.com/ventaroai/storefront/pkg/logger"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	_ = godotenv.Load()

	cfg := config.Load()
	logFormat := "text"
	if cfg.IsProduction() {
		logFormat = "json"
	}
	log := logger.New(logger.Config{Level: "info", Format: logFormat}).WithField("component", "server")
	log.Info("Starting Ventaro storefront service")

	application, err := app.New(cfg, app.Stores{}, nil, log)
	if err != nil {
		return fmt.Errorf("initialise application: %w", err)
	}

	handler := httpapi.NewHandler(application, log)

	cors := middleware.NewCORSMiddleware(cfg.CORSAllowedOrigins)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log)
	stopCleanup := make(chan struct{})
	limiter.StartCleanup(10*time.Minute, stopCleanup)
	defer close(stopCleanup)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      cors.Handler(limiter.Handler(handler)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
