// Package legacyapi serves the file-backed exercises endpoint kept for
// older clients
package legacyapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/yogi/internal/apperr"
	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/store"
)

// maxBodySize caps the size of a POST body.
const maxBodySize = 1 << 20

var errDecodeBody = &apperr.Error{
	Message: "invalid request body",
}

// Server exposes GET and POST on /api/exercises.
type Server struct {
	exercises *store.Repository[models.Exercise]
	router    chi.Router
}

// New returns a server whose exercises live in the JSON file at path.
func New(path string) *Server {
	s := &Server{
		exercises: store.NewExerciseRepo(jsonFile{path: path}),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/api/exercises", s.handleList)
	r.Post("/api/exercises", s.handleCreate)

	s.router = r

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	exercises := s.exercises.List()
	if exercises == nil {
		exercises = []models.Exercise{}
	}

	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Exercise

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, []string{errDecodeBody.Wrap(err).Error()})
		return
	}

	created, err := s.exercises.Create(in)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeErrors(w, http.StatusBadRequest, verr.Messages)
			return
		}

		slog.ErrorContext(r.Context(), "creating exercise failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)

		writeErrors(w, http.StatusInternalServerError, []string{err.Error()})

		return
	}

	slog.InfoContext(r.Context(), "exercise created",
		slog.String("id", created.ID),
	)

	writeJSON(w, http.StatusCreated, created)
}

func writeErrors(w http.ResponseWriter, status int, msgs []string) {
	writeJSON(w, status, map[string][]string{
		"errors": msgs,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port uint) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	pterm.Info.Printfln("serving /api/exercises on port: %d", port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			5*time.Second,
		)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}
