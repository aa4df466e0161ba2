// Package server exposes the catalog's admin and introspection API. The
// host game runtime talks to the catalog in-process; this HTTP surface is
// for operators: inspecting definitions, registering at runtime, metrics.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pharogames/itemforge/internal/catalog"
	"github.com/pharogames/itemforge/internal/item"
	"github.com/pharogames/itemforge/internal/logger"
	"github.com/pharogames/itemforge/internal/metrics"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

type Server struct {
	httpServer *http.Server
	service    catalog.Service
}

// NewServer creates the admin API server around the catalog service.
func NewServer(port int, service catalog.Service) *Server {
	s := &Server{service: service}

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handleHealthz)
	r.Get("/version", handleVersion)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/items", func(r chi.Router) {
		r.Get("/", s.handleListItems)
		r.Post("/", s.handleRegisterItem)
		r.Get("/{identity}", s.handleGetItem)
		r.Delete("/{identity}", s.handleUnregisterItem)
	})

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start starts the server
func (s *Server) Start() error {
	logger.FromContext(context.Background()).Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": Version})
}

func (s *Server) handleListItems(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.service.IDs()})
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	def, ok := s.service.GetDefinition(identity)
	if !ok {
		http.Error(w, ErrMsgItemNotFound, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

func (s *Server) handleRegisterItem(w http.ResponseWriter, r *http.Request) {
	// Seed the decode target so bodies that omit the optional behaviour
	// fields keep slot -1, droppable and movable rather than Go zero values.
	def := item.NewDefinition("", "")
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		http.Error(w, ErrMsgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := s.service.RegisterDefinition(r.Context(), def); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"identity": def.Identity})
}

func (s *Server) handleUnregisterItem(w http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	s.service.UnregisterDefinition(r.Context(), identity)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Health checks and scrapes would drown out the interesting lines.
		if strings.HasPrefix(r.URL.Path, "/healthz") || strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted, "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)

		sw := metrics.NewStatusRecorder(w)
		next.ServeHTTP(sw, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.Status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
