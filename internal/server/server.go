// Package server exposes the timetable document over HTTP and serves the
// static frontend assets.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsujimura/ckgrid/internal/schedule"
)

// Server serves static assets, the current document, and the whole-document
// save endpoint. Saves overwrite the full document; last write wins.
type Server struct {
	repo      schedule.Repository
	staticDir string
	log       *slog.Logger
}

// New creates a server over the given repository. A nil logger disables
// request logging output by discarding it.
func New(repo schedule.Repository, staticDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{repo: repo, staticDir: staticDir, log: logger}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/timetable.json", s.handleTimetable)
	r.Post("/save", s.handleSave)
	r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// handleTimetable serves the current document.
func (s *Server) handleTimetable(w http.ResponseWriter, r *http.Request) {
	clinics, err := s.repo.Load(r.Context())
	if err != nil {
		s.log.Error("loading timetable", "error", err)
		http.Error(w, "Failed to load file.", http.StatusInternalServerError)
		return
	}
	if clinics == nil {
		clinics = []*schedule.Clinic{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(clinics); err != nil {
		s.log.Error("encoding timetable", "error", err)
	}
}

// handleSave overwrites the whole document with the request body.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var clinics []*schedule.Clinic
	if err := json.NewDecoder(r.Body).Decode(&clinics); err != nil {
		http.Error(w, "Invalid timetable document.", http.StatusBadRequest)
		return
	}

	if err := s.repo.Save(r.Context(), clinics); err != nil {
		s.log.Error("saving timetable", "error", err)
		http.Error(w, "Failed to save file.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("File saved successfully."))
}

// requestLogger emits structured logs for every HTTP request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// NewLogger builds the JSON logger used by the serve command.
func NewLogger() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With("service", "ckgrid")
}
