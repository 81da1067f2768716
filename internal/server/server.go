// Package server exposes the figure gallery and compile pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tikzgo/tikzgo/pkg/compile"
	"github.com/tikzgo/tikzgo/pkg/errors"
	"github.com/tikzgo/tikzgo/pkg/gallery"
	"github.com/tikzgo/tikzgo/pkg/tikz"
)

// Server handles figure rendering and gallery requests.
type Server struct {
	store    gallery.Store
	renderer *compile.Renderer
	logger   *log.Logger
	router   chi.Router
}

// New creates a server around a figure store and a renderer.
func New(store gallery.Store, renderer *compile.Renderer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{store: store, renderer: renderer, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/figures", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/preview.png", s.handlePreview)
		})
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run starts the server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createRequest is the POST /figures payload.
type createRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	if req.Source == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "source is required"))
		return
	}

	fig, err := gallery.New(req.Name, req.Source)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	pdf, err := s.renderer.CompileSource(r.Context(), fig.ID, tikz.DocumentFromCode(req.Source))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	png, err := s.renderer.PNGFromPDF(r.Context(), fig.ID, pdf, compile.PNGOptions{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	fig.PNG = png

	if err := s.store.Put(r.Context(), fig); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("figure created", "id", fig.ID, "name", fig.Name)
	writeJSON(w, http.StatusCreated, figureResponse(fig))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	figs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]map[string]any, 0, len(figs))
	for _, fig := range figs {
		out = append(out, figureResponse(fig))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	fig, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, figureResponse(fig))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	fig, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(fig.PNG) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "figure %q has no preview", fig.ID))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(fig.PNG)
}

// figureResponse omits the PNG bytes; previews are fetched separately.
func figureResponse(fig *gallery.Figure) map[string]any {
	return map[string]any{
		"id":          fig.ID,
		"name":        fig.Name,
		"source":      fig.Source,
		"has_preview": len(fig.PNG) > 0,
		"created_at":  fig.CreatedAt,
		"updated_at":  fig.UpdatedAt,
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidTemplate, errors.ErrCodeInvalidName,
		errors.ErrCodeInvalidDOT:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound,
		errors.ErrCodeFigureNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
