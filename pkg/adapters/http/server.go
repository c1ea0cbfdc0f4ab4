package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/internal/runtime"
	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/observability"
	"github.com/aretw0/agrocalc/pkg/report"
	"github.com/aretw0/agrocalc/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Engine is the slice of the calculator engine the HTTP adapter needs.
type Engine interface {
	Modules() []domain.ModuleDescriptor
	Module(id string) (*calc.Module, error)
	Compute(ctx context.Context, moduleID string, strategy domain.StrategyID, raw domain.RawInputSet) (domain.ResultSequence, error)
	Report(ctx context.Context, moduleID string, strategy domain.StrategyID, raw domain.RawInputSet) (*report.Report, error)
	Dispatch(ctx context.Context, state *domain.State, event domain.Event) (*domain.State, error)
	Render(ctx context.Context, state *domain.State) (*domain.View, error)
	Now() time.Time
}

// Server serves the catalog over HTTP. It keeps no per-user state: clients
// send the full state with every /dispatch request.
type Server struct {
	Engine  Engine
	Metrics *observability.Metrics
	Logger  *slog.Logger
	Version string
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics enables request metrics and the /metrics endpoint.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithVersion sets the version reported by /info and the OpenAPI document.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = v
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{Engine: engine, Version: "dev"}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}
	return s.Router()
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(newLoggingMiddleware(s.Logger))
	if s.Metrics != nil {
		r.Use(newMetricsMiddleware(s.Metrics))
	}
	r.Use(enableCORS)

	r.Get("/health", s.Health)
	r.Get("/info", s.Info)
	r.Get("/openapi.json", s.OpenAPI)
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics.Handler())
	}

	r.Route("/modules", func(r chi.Router) {
		r.Get("/", s.ListModules)
		r.Get("/{id}", s.DescribeModule)
		r.Post("/{id}/compute", s.Compute)
		r.Post("/{id}/report", s.Report)
	})

	r.Post("/render", s.Render)
	r.Post("/dispatch", s.Dispatch)
	return r
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Info handles GET /info.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		Name:    "agrocalc",
		Version: s.Version,
		Modules: len(s.Engine.Modules()),
	})
}

// ListModules handles GET /modules.
func (s *Server) ListModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Modules())
}

// DescribeModule handles GET /modules/{id}.
func (s *Server) DescribeModule(w http.ResponseWriter, r *http.Request) {
	m, err := s.Engine.Module(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Compute handles POST /modules/{id}/compute.
func (s *Server) Compute(w http.ResponseWriter, r *http.Request) {
	var body ComputeRequest
	if !s.decode(w, r, &body) {
		return
	}
	raw, err := sanitizeInputs(body.Inputs)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	m, err := s.Engine.Module(id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	st, err := m.Strategy(body.Strategy)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	seq, err := s.Engine.Compute(r.Context(), m.ID, st.ID, raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ComputeResponse{
		Module:   m.ID,
		Strategy: st.ID,
		Outcome:  domain.Outcome(seq),
		Results:  newResultViews(seq),
	})
}

// Report handles POST /modules/{id}/report?format=markdown|json|yaml.
func (s *Server) Report(w http.ResponseWriter, r *http.Request) {
	format := report.FormatMarkdown
	if name := r.URL.Query().Get("format"); name != "" {
		f, err := report.ParseFormat(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		format = f
	}

	var body ComputeRequest
	if !s.decode(w, r, &body) {
		return
	}
	raw, err := sanitizeInputs(body.Inputs)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	rep, err := s.Engine.Report(r.Context(), chi.URLParam(r, "id"), body.Strategy, raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := report.Render(rep, format, s.Engine.Now())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// Render handles POST /render.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	var state domain.State
	if !s.decode(w, r, &state) {
		return
	}
	view, err := s.Engine.Render(r.Context(), &state)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Dispatch handles POST /dispatch.
func (s *Server) Dispatch(w http.ResponseWriter, r *http.Request) {
	var body DispatchRequest
	if !s.decode(w, r, &body) {
		return
	}
	if body.State == nil {
		body.State = domain.NewState()
	}
	if body.Event.Value != "" {
		clean, err := runner.SanitizeInput(body.Event.Value)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		body.Event.Value = clean
	}

	resp, err := runner.DispatchAndRender(r.Context(), s.Engine, body.State, body.Event)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.Logger.Warn("invalid request body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.Logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, status, err)
}

func statusFor(err error) int {
	var unknown *runtime.UnknownEventError
	switch {
	case errors.Is(err, domain.ErrModuleNotFound), errors.Is(err, domain.ErrStrategyNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFieldNotFound),
		errors.Is(err, domain.ErrNoActiveModule),
		errors.Is(err, runner.ErrInputTooLarge),
		errors.Is(err, runner.ErrInvalidUTF8),
		errors.As(err, &unknown):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sanitizeInputs(in map[string]string) (domain.RawInputSet, error) {
	raw := make(domain.RawInputSet, len(in))
	for k, v := range in {
		clean, err := runner.SanitizeInput(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		raw[k] = clean
	}
	return raw, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
