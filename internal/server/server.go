package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/brk3/habitgrid/internal/config"
	"github.com/brk3/habitgrid/internal/logger"
	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	cfg     *config.Config
	tracker *tracker.Tracker
}

func New(cfg *config.Config, tr *tracker.Tracker) *Server {
	return &Server{cfg: cfg, tracker: tr}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Get("/quote", s.getQuote)
	r.Get("/export", s.exportData)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", s.listHabits)
		r.Post("/", s.addHabit)
		r.Delete("/{habit_id}", s.deleteHabit)
		r.Get("/{habit_id}/days/{date}", s.getStatus)
		r.Put("/{habit_id}/days/{date}", s.setStatus)
	})
	r.Route("/stats/{year}/{month}", func(r chi.Router) {
		r.Get("/", s.getMonthStats)
		r.Get("/days", s.getDayStats)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
