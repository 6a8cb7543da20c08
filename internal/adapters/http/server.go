package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/aretw0/hexrune"
	"github.com/aretw0/hexrune/internal/dto"
	"github.com/aretw0/hexrune/internal/logging"
	"github.com/aretw0/hexrune/internal/presentation/graph"
	"github.com/aretw0/hexrune/pkg/adapters/memory"
	"github.com/aretw0/hexrune/pkg/domain"
	hexgraph "github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIVersion is the version of the JSON surface served by NewHandler.
const APIVersion = "0.1.0"

// MaxTicks bounds the number of frames a single play request may run.
const MaxTicks = 10000

// MaxExecutions is the default number of node executions a play request may
// run before the script is halted.
const MaxExecutions = 1_000_000

// maxScriptBytes bounds uploaded script assets.
const maxScriptBytes = 8 << 20

// Engine is the part of the HexRune engine the HTTP surface drives.
type Engine interface {
	NewScript() *hexgraph.Script
	Load(ctx context.Context, assetID string) (*hexgraph.Script, error)
	Save(ctx context.Context, assetID string, s *hexgraph.Script) error
	Delete(ctx context.Context, assetID string) error
	List(ctx context.Context) ([]string, error)
}

var _ Engine = (*hexrune.Engine)(nil)

// Server serves script assets of an Engine over JSON.
type Server struct {
	Engine  Engine
	Logger  *slog.Logger
	metrics http.Handler
	budget  int
}

// Option configures the handler built by NewHandler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithExecutionBudget bounds the node executions of one play request.
// Zero or less disables the bound.
func WithExecutionBudget(n int) Option {
	return func(s *Server) {
		s.budget = n
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine: engine,
		Logger: logging.NewNop(),
		budget: MaxExecutions,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.metrics)
	}

	r.Route("/scripts", func(r chi.Router) {
		r.Get("/", server.ListScripts)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", server.GetScript)
			r.Put("/", server.PutScript)
			r.Delete("/", server.DeleteScript)
			r.Get("/graph", server.GetGraph)
			r.Post("/play", server.PlayScript)
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "hexrune-http",
		"version":     strings.TrimSpace(hexrune.Version),
		"api_version": APIVersion,
	})
}

// ListScripts handles the GET /scripts request.
func (s *Server) ListScripts(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"scripts": ids})
}

// GetScript handles the GET /scripts/{id} request.
func (s *Server) GetScript(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	script, err := s.Engine.Load(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.FromScript(id, script))
}

// PutScript handles the PUT /scripts/{id} request. The body is a serialized
// script; it is loaded before being stored so broken assets and flow cycles
// are rejected.
func (s *Server) PutScript(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	data, err := io.ReadAll(io.LimitReader(r.Body, maxScriptBytes+1))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(data) > maxScriptBytes {
		http.Error(w, "Script too large", http.StatusRequestEntityTooLarge)
		return
	}

	script := s.Engine.NewScript()
	if err := script.Load(data); err != nil {
		http.Error(w, fmt.Sprintf("Invalid script: %v", err), http.StatusBadRequest)
		return
	}
	if err := checkFlow(script); err != nil {
		http.Error(w, fmt.Sprintf("Invalid script: %v", err), http.StatusBadRequest)
		return
	}
	if err := s.Engine.Save(r.Context(), id, script); err != nil {
		s.fail(w, r, err)
		return
	}
	s.Logger.Info("script stored", "asset", id, "nodes", len(script.Nodes()))
	s.writeJSON(w, http.StatusOK, dto.FromScript(id, script))
}

// DeleteScript handles the DELETE /scripts/{id} request.
func (s *Server) DeleteScript(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetGraph handles the GET /scripts/{id}/graph request with a Mermaid diagram.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	script, err := s.Engine.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, graph.GenerateMermaid(script, nil)); err != nil {
		s.Logger.Error("graph response write failed", "error", err)
	}
}

// PlayRequest is the body of POST /scripts/{id}/play.
type PlayRequest struct {
	Ticks     int     `json:"ticks"`
	DeltaTime float32 `json:"dt"`
}

// PlayResponse reports what a play request executed.
type PlayResponse struct {
	Executions int            `json:"executions"`
	ByType     map[string]int `json:"by_type"`
	Deferred   []string       `json:"deferred"`
}

// PlayScript handles the POST /scripts/{id}/play request. The script runs
// against an empty in-memory scene; the stored asset is not modified. Scripts
// with flow cycles are refused and runs past the execution budget are halted.
func (s *Server) PlayScript(w http.ResponseWriter, r *http.Request) {
	req := PlayRequest{DeltaTime: 1.0 / 60}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}
	if req.Ticks < 0 || req.Ticks > MaxTicks {
		http.Error(w, "ticks must be between 0 and "+strconv.Itoa(MaxTicks), http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	script, err := s.Engine.Load(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if err := checkFlow(script); err != nil {
		s.fail(w, r, err)
		return
	}

	rec := newRecorder(script, s.budget)
	script.SetLifecycleHooks(metrics.Chain(script.LifecycleHooks(), rec.hooks()))
	if err := hexrune.Play(r.Context(), script, memory.NewScene(), hexrune.PlayOptions{
		Ticks:     req.Ticks,
		DeltaTime: req.DeltaTime,
	}); err != nil {
		s.fail(w, r, err)
		return
	}

	resp := PlayResponse{
		Executions: rec.total,
		ByType:     rec.byType,
		Deferred:   []string{},
	}
	for _, d := range script.Deferred() {
		resp.Deferred = append(resp.Deferred, strconv.FormatUint(uint64(d.NodeID), 10))
	}
	s.Logger.Debug("script played", "asset", id, "ticks", req.Ticks, "executions", rec.total)
	s.writeJSON(w, http.StatusOK, resp)
}

// fail maps engine errors to status codes.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrScriptNotFound):
		http.Error(w, "Script not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrFlowCycle):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrHalted):
		http.Error(w, "Execution budget exceeded", http.StatusUnprocessableEntity)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "Request cancelled", http.StatusServiceUnavailable)
	default:
		s.Logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// checkFlow rejects scripts whose flow links loop; running one would recurse
// until the goroutine stack overflows, which no handler can recover from.
func checkFlow(script *hexgraph.Script) error {
	if cycle := script.FlowCycle(); cycle != nil {
		return fmt.Errorf("%w through nodes %v", domain.ErrFlowCycle, cycle)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

// recorder tallies node executions of one play request and halts the
// script once the budget is spent.
type recorder struct {
	mu     sync.Mutex
	script *hexgraph.Script
	budget int
	total  int
	byType map[string]int
}

func newRecorder(script *hexgraph.Script, budget int) *recorder {
	return &recorder{script: script, budget: budget, byType: make(map[string]int)}
}

func (r *recorder) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(e *domain.NodeEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.budget > 0 && r.total >= r.budget {
				r.script.Halt()
				return
			}
			r.total++
			r.byType[e.TypeName]++
		},
	}
}
