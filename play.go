package hexrune

import (
	"context"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/ports"
)

// Clock is implemented by scenes whose frame time the host loop can set.
type Clock interface {
	SetDeltaTime(dt float32)
}

// PlayOptions configures Play.
type PlayOptions struct {
	// Ticks is the number of frames between BeginPlay and EndPlay.
	Ticks int
	// DeltaTime is the frame time in seconds.
	DeltaTime float32
}

// Play drives a script through a fixed host loop: BeginPlay, then per frame
// Tick followed by AdvanceDeferred, then EndPlay. It stops early, skipping
// EndPlay, when ctx is done or the script is halted (domain.ErrHalted).
func Play(ctx context.Context, s *graph.Script, scene ports.Scene, opts PlayOptions) error {
	if c, ok := scene.(Clock); ok {
		c.SetDeltaTime(opts.DeltaTime)
	}

	s.BeginPlay(scene)
	for i := 0; i < opts.Ticks; i++ {
		if err := interrupted(ctx, s); err != nil {
			return err
		}
		s.Tick(scene)
		s.AdvanceDeferred(opts.DeltaTime)
	}
	if err := interrupted(ctx, s); err != nil {
		return err
	}
	s.EndPlay(scene)
	if s.Halted() {
		return domain.ErrHalted
	}
	return nil
}

func interrupted(ctx context.Context, s *graph.Script) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Halted() {
		return domain.ErrHalted
	}
	return nil
}
