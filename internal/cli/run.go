package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/hexrune"
	hexdonburi "github.com/aretw0/hexrune/pkg/adapters/donburi"
	"github.com/aretw0/hexrune/pkg/adapters/memory"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/metrics"
	"github.com/aretw0/hexrune/pkg/ports"
	"github.com/yohamta/donburi"
)

// RunOptions configures Run.
type RunOptions struct {
	AssetID   string
	Ticks     int
	DeltaTime float32
	// Scene is "memory" (default) or "donburi".
	Scene string
	// Entities are spawned by name, in order, before BeginPlay.
	Entities []string
}

// RunReport summarizes one Run.
type RunReport struct {
	Script   *graph.Script
	Entities map[string]domain.Entity
	Visited  []domain.NodeID
	ByType   map[string]int
	Deferred []graph.Deferral
}

// Run loads a script and plays it against a fresh scene. Scripts whose flow
// links loop are refused.
func Run(ctx context.Context, eng *hexrune.Engine, opts RunOptions) (*RunReport, error) {
	scene, spawn, err := newScene(opts.Scene)
	if err != nil {
		return nil, err
	}

	s, err := eng.Load(ctx, opts.AssetID)
	if err != nil {
		return nil, err
	}
	if cycle := s.FlowCycle(); cycle != nil {
		return nil, fmt.Errorf("script %q: %w through nodes %v", opts.AssetID, domain.ErrFlowCycle, cycle)
	}

	report := &RunReport{
		Script:   s,
		Entities: make(map[string]domain.Entity, len(opts.Entities)),
		ByType:   make(map[string]int),
	}
	for _, name := range opts.Entities {
		report.Entities[name] = spawn(name)
	}

	s.SetLifecycleHooks(metrics.Chain(s.LifecycleHooks(), domain.LifecycleHooks{
		OnNodeEnter: func(e *domain.NodeEvent) {
			report.Visited = append(report.Visited, e.NodeID)
			report.ByType[e.TypeName]++
		},
	}))

	if err := hexrune.Play(ctx, s, scene, hexrune.PlayOptions{
		Ticks:     opts.Ticks,
		DeltaTime: opts.DeltaTime,
	}); err != nil {
		return report, err
	}
	report.Deferred = s.Deferred()
	return report, nil
}

func newScene(kind string) (ports.Scene, func(string) domain.Entity, error) {
	switch kind {
	case "", "memory":
		scene := memory.NewScene()
		return scene, func(name string) domain.Entity {
			e := scene.Spawn()
			scene.SetName(e, name)
			return e
		}, nil
	case "donburi":
		scene := hexdonburi.NewScene(donburi.NewWorld())
		return scene, scene.Spawn, nil
	}
	return nil, nil, fmt.Errorf("unknown scene %q", kind)
}
