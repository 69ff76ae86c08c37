// Package api exposes the views over an HTTP JSON API. Rendering is the
// client's job; handlers only hand back structured view data and CSV
// downloads.
package api

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"insiderwatch/config"
	"insiderwatch/internal/store"
)

// Server wraps the HTTP server and its routes.
type Server struct {
	st         *store.Store
	httpServer *http.Server
}

// NewServer builds a server around the record store.
func NewServer(cfg config.ServerConfig, st *store.Store) *Server {
	s := &Server{st: st}
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler builds the route table. Exposed separately so tests can drive
// it through httptest without binding a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/v1/alerts", s.handleAlerts)
	mux.HandleFunc("GET /api/v1/alerts/export", s.handleAlertsExport)
	mux.HandleFunc("GET /api/v1/timeline", s.handleTimeline)
	mux.HandleFunc("GET /api/v1/users", s.handleUsers)
	mux.HandleFunc("GET /api/v1/users/{user}", s.handleProfile)
	mux.HandleFunc("GET /api/v1/users/{user}/export", s.handleProfileExport)
	return mux
}

// Start serves requests until Shutdown.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
