package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/hexrune"
	"github.com/aretw0/hexrune/internal/config"
	"github.com/aretw0/hexrune/pkg/adapters/file"
	"github.com/aretw0/hexrune/pkg/adapters/memory"
	"github.com/aretw0/hexrune/pkg/adapters/redis"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/metrics"
	"github.com/aretw0/hexrune/pkg/persistence/middleware"
	"github.com/aretw0/hexrune/pkg/ports"
)

// EngineOptions configures CreateEngine.
type EngineOptions struct {
	Config config.Config
	Logger *slog.Logger
	// Debug logs every node entry and exit.
	Debug bool
	// Metrics, when set, counts node executions.
	Metrics *metrics.Collector
}

// CreateEngine builds an engine over the configured store. The returned
// close function releases the store's connections.
func CreateEngine(opts EngineOptions) (*hexrune.Engine, func() error, error) {
	store, closeStore, err := NewStore(opts.Config.Store)
	if err != nil {
		return nil, nil, err
	}

	var hooks []domain.LifecycleHooks
	if opts.Debug {
		hooks = append(hooks, createDebugHooks(opts.Logger))
	}
	if opts.Metrics != nil {
		hooks = append(hooks, opts.Metrics.Hooks())
	}

	eng := hexrune.New(
		hexrune.WithStore(store),
		hexrune.WithLogger(opts.Logger),
		hexrune.WithLifecycleHooks(metrics.Chain(hooks...)),
	)
	return eng, closeStore, nil
}

// NewStore opens the script store selected by cfg.Backend, sealed with
// AES-GCM when an encryption key is configured.
func NewStore(cfg config.Store) (ports.ScriptStore, func() error, error) {
	store, closeStore, err := openBackend(cfg)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.Encryption.Enabled() {
		return store, closeStore, nil
	}

	active, fallback, err := cfg.Encryption.Keys()
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:      active,
		FallbackKeys:   fallback,
		AllowPlaintext: cfg.Encryption.AllowPlaintext,
	})
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	return middleware.Chain(store, mw), closeStore, nil
}

func openBackend(cfg config.Store) (ports.ScriptStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case "file", "":
		return file.New(cfg.Dir), noop, nil
	case "memory":
		return memory.NewStore(), noop, nil
	case "redis":
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		s := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(e *domain.NodeEvent) {
			logger.Debug("enter node", "node_id", e.NodeID, "type", e.TypeName)
		},
		OnNodeLeave: func(e *domain.NodeEvent) {
			logger.Debug("leave node", "node_id", e.NodeID, "selector", e.Selector)
		},
		OnDeferred: func(e *domain.NodeEvent) {
			logger.Debug("node deferred", "node_id", e.NodeID, "type", e.TypeName)
		},
	}
}
