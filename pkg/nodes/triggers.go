package nodes

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
)

// trigger is an entry point invoked by the host through a reserved node id.
type trigger struct {
	*graph.BaseNode
}

func (trigger) IsStartNode() bool { return true }

func (trigger) OnExecute(*graph.Exec) int8 { return 0 }

type BeginPlay struct{ trigger }

type EndPlay struct{ trigger }

// Tick writes the frame time to its "Dt" output before continuing.
type Tick struct{ trigger }

func (n *Tick) OnExecute(x *graph.Exec) int8 {
	n.SetOutput(1, domain.FloatValue(x.DeltaTime()))
	return 0
}

// Overlap outputs are written by the host before traversal.
type Overlap struct{ trigger }

func newBeginPlay(b *graph.BaseNode) graph.Node {
	b.AddOutput("", domain.PinTypeFlow)
	return &BeginPlay{trigger{b}}
}

func newEndPlay(b *graph.BaseNode) graph.Node {
	b.AddOutput("", domain.PinTypeFlow)
	return &EndPlay{trigger{b}}
}

func newTick(b *graph.BaseNode) graph.Node {
	b.AddOutput("", domain.PinTypeFlow)
	b.AddOutput("Dt", domain.PinTypeFloat)
	return &Tick{trigger{b}}
}

func newOverlap(b *graph.BaseNode) graph.Node {
	b.AddOutput("", domain.PinTypeFlow)
	b.AddOutput("Triggering", domain.PinTypeEntity)
	b.AddOutput("Other", domain.PinTypeEntity)
	return &Overlap{trigger{b}}
}
