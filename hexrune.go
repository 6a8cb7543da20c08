package hexrune

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/hexrune/internal/logging"
	"github.com/aretw0/hexrune/pkg/adapters/memory"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/nodes"
	"github.com/aretw0/hexrune/pkg/ports"
)

// Engine is the high-level entry point for the HexRune library.
// It builds scripts with the standard node library and moves them in and out
// of a ScriptStore.
type Engine struct {
	store     ports.ScriptStore
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	ids       ports.IDGenerator
	libraries []func(*graph.Factory)
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore sets where script assets are persisted (default: in memory).
func WithStore(store ports.ScriptStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets a custom structured logger for the engine and its scripts.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on every script.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithIDGenerator replaces the random id generator of every script.
func WithIDGenerator(ids ports.IDGenerator) Option {
	return func(e *Engine) {
		e.ids = ids
	}
}

// WithNodeLibrary registers extra node types after the standard library.
// The order of libraries is part of the persisted format; keep it fixed.
func WithNodeLibrary(register func(*graph.Factory)) Option {
	return func(e *Engine) {
		e.libraries = append(e.libraries, register)
	}
}

// New initializes a new HexRune Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Store returns the engine's script store.
func (e *Engine) Store() ports.ScriptStore { return e.store }

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger { return e.logger }

// NewScript returns an empty script wired to the engine's logger, hooks and libraries.
func (e *Engine) NewScript() *graph.Script {
	return e.newScript(e.logger)
}

func (e *Engine) newScript(logger *slog.Logger) *graph.Script {
	opts := []graph.Option{
		graph.WithLogger(logger),
		graph.WithLifecycleHooks(e.hooks),
		graph.WithNodeLibrary(nodes.Register),
	}
	if e.ids != nil {
		opts = append(opts, graph.WithIDGenerator(e.ids))
	}
	for _, lib := range e.libraries {
		opts = append(opts, graph.WithNodeLibrary(lib))
	}
	return graph.New(opts...)
}

// Load reads a script asset and returns it deserialized and relinked,
// ready to execute. The script's logger carries the asset id.
func (e *Engine) Load(ctx context.Context, assetID string) (*graph.Script, error) {
	data, err := e.store.Load(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("load script %q: %w", assetID, err)
	}
	s := e.newScript(e.logger.With("asset", assetID))
	if err := s.Load(data); err != nil {
		return nil, fmt.Errorf("load script %q: %w", assetID, err)
	}
	e.logger.Debug("script loaded", "asset", assetID, "nodes", len(s.Nodes()), "bytes", len(data))
	return s, nil
}

// Save serializes the script and writes it under assetID.
func (e *Engine) Save(ctx context.Context, assetID string, s *graph.Script) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return fmt.Errorf("save script %q: %w", assetID, err)
	}
	if err := e.store.Save(ctx, assetID, data); err != nil {
		return fmt.Errorf("save script %q: %w", assetID, err)
	}
	e.logger.Debug("script saved", "asset", assetID, "bytes", len(data))
	return nil
}

// Delete removes a script asset.
func (e *Engine) Delete(ctx context.Context, assetID string) error {
	return e.store.Delete(ctx, assetID)
}

// List returns the stored asset ids.
func (e *Engine) List(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}
