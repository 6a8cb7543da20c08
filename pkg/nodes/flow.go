package nodes

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
)

// Branch continues through "True" or "False".
type Branch struct{ *graph.BaseNode }

func newBranch(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("Condition", domain.PinTypeBool)
	b.AddOutput("True", domain.PinTypeFlow)
	b.AddOutput("False", domain.PinTypeFlow)
	return &Branch{b}
}

func (n *Branch) OnExecute(*graph.Exec) int8 {
	if n.InputValue(1).AsBool() {
		return 0
	}
	return 1
}

// Sequence fires its three outputs in order.
type Sequence struct{ *graph.BaseNode }

func newSequence(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddOutput("0", domain.PinTypeFlow)
	b.AddOutput("1", domain.PinTypeFlow)
	b.AddOutput("2", domain.PinTypeFlow)
	return &Sequence{b}
}

func (n *Sequence) OnExecute(*graph.Exec) int8 { return domain.SelectAll }

// Delay suspends flow for "Duration" seconds. "Completed" fires when the
// host resumes the node (Script.Resume or Script.AdvanceDeferred).
type Delay struct{ *graph.BaseNode }

func newDelay(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("Duration", domain.PinTypeFloat)
	b.AddOutput("Completed", domain.PinTypeFlow)
	return &Delay{b}
}

// Suspends reports that "Completed" fires from a resume, not from OnExecute.
func (*Delay) Suspends() bool { return true }

func (n *Delay) OnExecute(x *graph.Exec) int8 {
	x.Defer(n.InputValue(1).AsFloat())
	return domain.Defer
}

// EntityLoop runs "Loop Body" to completion once per entity, then "Completed".
type EntityLoop struct{ *graph.BaseNode }

func newEntityLoop(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("List", domain.PinTypeEntityList)
	b.AddOutput("Loop Body", domain.PinTypeFlow)
	b.AddOutput("Element", domain.PinTypeEntity)
	b.AddOutput("Index", domain.PinTypeInt)
	b.AddOutput("Completed", domain.PinTypeFlow)
	return &EntityLoop{b}
}

func (n *EntityLoop) OnExecute(x *graph.Exec) int8 {
	for i, e := range n.InputValue(1).AsEntityList() {
		n.SetOutput(1, domain.EntityValue(e))
		n.SetOutput(2, domain.IntValue(int32(i)))
		x.Fire(0)
		if x.Halted() {
			break
		}
	}
	return 3
}

// ComponentLoop is EntityLoop over component handles.
type ComponentLoop struct{ *graph.BaseNode }

func newComponentLoop(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("List", domain.PinTypeComponentPointerList)
	b.AddOutput("Loop Body", domain.PinTypeFlow)
	b.AddOutput("Element", domain.PinTypeComponentPointer)
	b.AddOutput("Index", domain.PinTypeInt)
	b.AddOutput("Completed", domain.PinTypeFlow)
	return &ComponentLoop{b}
}

func (n *ComponentLoop) OnExecute(x *graph.Exec) int8 {
	for i, c := range n.InputValue(1).AsComponentList() {
		n.SetOutput(1, domain.ComponentValue(c))
		n.SetOutput(2, domain.IntValue(int32(i)))
		x.Fire(0)
		if x.Halted() {
			break
		}
	}
	return 3
}

// ForLoop runs "Loop Body" for every index in [First, Last].
type ForLoop struct{ *graph.BaseNode }

func newForLoop(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("First", domain.PinTypeInt)
	b.AddInput("Last", domain.PinTypeInt)
	b.AddOutput("Loop Body", domain.PinTypeFlow)
	b.AddOutput("Index", domain.PinTypeInt)
	b.AddOutput("Completed", domain.PinTypeFlow)
	return &ForLoop{b}
}

func (n *ForLoop) OnExecute(x *graph.Exec) int8 {
	first, last := n.InputValue(1).AsInt(), n.InputValue(2).AsInt()
	if !n.Output(0).IsLinked() {
		// Nothing observes the iterations; only the final index is visible.
		if first <= last {
			n.SetOutput(1, domain.IntValue(last))
		}
		return 2
	}
	for i := int64(first); i <= int64(last); i++ {
		n.SetOutput(1, domain.IntValue(int32(i)))
		x.Fire(0)
		if x.Halted() {
			break
		}
	}
	return 2
}
