package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/d0sboots/maze-project/pkg/cache"
	"github.com/d0sboots/maze-project/pkg/maze"
	"github.com/d0sboots/maze-project/pkg/store"
)

// contentTypes maps artifact formats to their MIME types.
var contentTypes = map[string]string{
	"text": "text/plain; charset=utf-8",
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"dot":  "text/vnd.graphviz",
}

// server holds the HTTP handler state: the artifact cache, the maze store
// and the key namespace.
type server struct {
	logger    *log.Logger
	artifacts cache.Cache
	keyer     cache.Keyer
	mazes     store.Store
	ttl       time.Duration
}

func newServer(logger *log.Logger, artifacts cache.Cache, keyer cache.Keyer, mazes store.Store, ttl time.Duration) *server {
	return &server{
		logger:    logger,
		artifacts: artifacts,
		keyer:     keyer,
		mazes:     mazes,
		ttl:       ttl,
	}
}

// routes builds the router. Request IDs are attached by middleware and
// logged with every request line.
func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/maze", s.handleRender)
	r.Route("/mazes", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/render", s.handleRenderStored)
		r.Delete("/{id}", s.handleDelete)
	})

	return r
}

// logRequests logs one line per request with method, path, status and
// duration.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleRender generates and renders a maze in one shot, backed by the
// artifact cache. With no seed parameter a random seed is chosen and
// reported in the X-Maze-Seed header.
func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cfg, ropts, err := parseRenderQuery(r)
	if err != nil {
		s.clientError(w, err)
		return
	}
	w.Header().Set("X-Maze-Seed", cfg.Seed)

	gridKey := s.keyer.GridKey(cfg.Width, cfg.Height, cfg.WeaveFraction, cfg.Seed)
	key := s.keyer.ArtifactKey(gridKey, ropts.keyOpts())

	var data []byte
	var hit bool
	err = cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = s.artifacts.Get(ctx, key)
		return err
	})
	if err != nil {
		s.logger.Warnf("Cache read failed: %v", err)
	}

	if !hit {
		g, err := maze.Generate(cfg)
		if err != nil {
			s.clientError(w, err)
			return
		}
		data, err = renderArtifact(g, ropts)
		if err != nil {
			s.serverError(w, err)
			return
		}
		if err := cache.RetryWithBackoff(ctx, func() error {
			return s.artifacts.Set(ctx, key, data, s.ttl)
		}); err != nil {
			s.logger.Warnf("Cache write failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", contentTypes[ropts.format])
	w.Write(data)
}

// createRequest is the POST /mazes body.
type createRequest struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	WeaveFraction float64 `json:"weave_fraction"`
	Seed          string  `json:"seed"`
}

func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.clientError(w, fmt.Errorf("invalid body: %w", err))
		return
	}
	if req.Seed == "" {
		req.Seed = newSeed()
	}

	cfg := maze.Config{
		Width:         req.Width,
		Height:        req.Height,
		WeaveFraction: req.WeaveFraction,
		Seed:          req.Seed,
	}
	g, err := maze.Generate(cfg)
	if err != nil {
		s.clientError(w, err)
		return
	}

	rec := store.NewRecord(cfg, g)
	if err := s.mazes.Save(r.Context(), rec); err != nil {
		s.serverError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, rec)
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.clientError(w, fmt.Errorf("invalid limit: %q", v))
			return
		}
		limit = n
	}

	recs, err := s.mazes.List(r.Context(), limit)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// handleRenderStored re-renders a stored maze in any format. Stored mazes
// are immutable, so artifacts are cached under the record ID.
func (s *server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	ropts, err := parseRenderOpts(r)
	if err != nil {
		s.clientError(w, err)
		return
	}

	key := s.keyer.ArtifactKey(rec.ID.String(), ropts.keyOpts())
	data, hit, err := s.artifacts.Get(ctx, key)
	if err != nil {
		s.logger.Warnf("Cache read failed: %v", err)
	}
	if !hit {
		data, err = renderArtifact(rec.Grid(), ropts)
		if err != nil {
			s.serverError(w, err)
			return
		}
		if err := s.artifacts.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warnf("Cache write failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", contentTypes[ropts.format])
	w.Write(data)
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.clientError(w, fmt.Errorf("invalid maze id: %w", err))
		return
	}

	err = s.mazes.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lookup resolves the {id} URL parameter to a stored record, writing the
// error response itself when the ID is bad or unknown.
func (s *server) lookup(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.clientError(w, fmt.Errorf("invalid maze id: %w", err))
		return nil, false
	}

	rec, err := s.mazes.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.notFound(w)
		return nil, false
	}
	if err != nil {
		s.serverError(w, err)
		return nil, false
	}
	return rec, true
}

// parseRenderQuery parses generation plus rendering parameters for the
// one-shot /maze endpoint.
func parseRenderQuery(r *http.Request) (maze.Config, renderOpts, error) {
	cfg := maze.Config{Width: 20, Height: 20, WeaveFraction: 0.1}

	q := r.URL.Query()
	var err error
	if cfg.Width, err = intParam(q.Get("width"), cfg.Width); err != nil {
		return cfg, renderOpts{}, fmt.Errorf("invalid width: %w", err)
	}
	if cfg.Height, err = intParam(q.Get("height"), cfg.Height); err != nil {
		return cfg, renderOpts{}, fmt.Errorf("invalid height: %w", err)
	}
	if v := q.Get("weave"); v != "" {
		if cfg.WeaveFraction, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, renderOpts{}, fmt.Errorf("invalid weave: %w", err)
		}
	}
	cfg.Seed = q.Get("seed")
	if cfg.Seed == "" {
		cfg.Seed = newSeed()
	}

	ropts, err := parseRenderOpts(r)
	return cfg, ropts, err
}

// parseRenderOpts parses the rendering parameters shared by /maze and
// /mazes/{id}/render.
func parseRenderOpts(r *http.Request) (renderOpts, error) {
	q := r.URL.Query()
	opts := renderOpts{
		format:  "text",
		space:   q.Get("space"),
		palette: q.Get("palette"),
	}
	if v := q.Get("format"); v != "" {
		opts.format = v
	}
	if !validFormats[opts.format] {
		return opts, fmt.Errorf("invalid format: %s", opts.format)
	}

	var err error
	if opts.cellWidth, err = intParam(q.Get("cell-width"), 0); err != nil {
		return opts, fmt.Errorf("invalid cell-width: %w", err)
	}
	if opts.wallWidth, err = intParam(q.Get("wall-width"), 0); err != nil {
		return opts, fmt.Errorf("invalid wall-width: %w", err)
	}
	if opts.passageWidth, err = intParam(q.Get("passage-width"), 0); err != nil {
		return opts, fmt.Errorf("invalid passage-width: %w", err)
	}
	return opts, nil
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("Encode response: %v", err)
	}
}

func (s *server) clientError(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (s *server) notFound(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "maze not found"})
}

func (s *server) serverError(w http.ResponseWriter, err error) {
	s.logger.Errorf("Internal error: %v", err)
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
