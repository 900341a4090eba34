// Package server exposes the ROI calculator over HTTP. Every request is
// an independent pure computation; there is no shared state and nothing
// is persisted between calls.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/entremotivator/turoi/internal/config"
	"github.com/entremotivator/turoi/internal/model"
)

// Service is the HTTP API runtime.
type Service struct {
	addr     string
	defaults model.RentalInputs
}

// New builds a service from the loaded config. The configured defaults
// back the /v1/defaults endpoint so UIs can pre-fill their input fields.
func New(cfg config.Config) *Service {
	addr := cfg.Server.Addr
	if addr == "" {
		addr = "127.0.0.1:8390"
	}
	return &Service{
		addr:     addr,
		defaults: cfg.Inputs(),
	}
}

// Addr returns the listen address.
func (s *Service) Addr() string {
	return s.addr
}

// Router builds the chi router with all routes and middleware configured.
func (s *Service) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/defaults", s.handleDefaults)
		r.Get("/roi", s.handleROIQuery)
		r.Post("/roi", s.handleROI)
	})

	return r
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("roi http server: %w", err)
	}
}
