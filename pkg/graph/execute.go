package graph

import (
	"log/slog"
	"time"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/ports"
)

// Exec is handed to OnExecute. It exposes the running script and lets a node
// push flow synchronously or suspend itself.
type Exec struct {
	script *Script
	node   Node
}

// Script returns the executing script.
func (x *Exec) Script() *Script { return x.script }

// Scene returns the scene of the current traversal. It may be nil.
func (x *Exec) Scene() ports.Scene { return x.script.scene }

// Logger returns the script logger.
func (x *Exec) Logger() *slog.Logger { return x.script.logger }

// DeltaTime returns the scene's frame time, or 0 without a scene.
func (x *Exec) DeltaTime() float32 {
	if x.script.scene == nil {
		return 0
	}
	return x.script.scene.DeltaTime()
}

// Fire runs the successor linked to output i to completion before returning.
// Loop nodes use it to run their body once per element.
func (x *Exec) Fire(i int) {
	x.script.fire(x.node.Base().Output(i))
}

// Halted reports whether the script was halted. Loop nodes stop iterating.
func (x *Exec) Halted() bool { return x.script.halted }

// Defer suspends the node for duration seconds. The node must return
// domain.Defer. Deferring an already pending node restarts its timer.
func (x *Exec) Defer(duration float32) {
	x.script.deferNode(x.node.Base().id, duration)
}

// Execute runs the node protocol: resolve inputs, run OnExecute, push flow.
// A halted script executes nothing.
func (s *Script) Execute(n Node) {
	if s.halted {
		return
	}
	b := n.Base()
	s.emit(s.hooks.OnNodeEnter, b, 0)
	if s.halted {
		return
	}

	for _, in := range b.inputs {
		if in.IsFlow() {
			continue
		}
		s.DeriveInput(in)
	}

	sel := n.OnExecute(&Exec{script: s, node: n})
	s.emit(s.hooks.OnNodeLeave, b, sel)

	switch {
	case sel == domain.Defer:
		s.emit(s.hooks.OnDeferred, b, sel)
	case sel == domain.SelectAll:
		for _, out := range b.outputs {
			if out.IsFlow() && out.IsLinked() {
				s.fire(out)
			}
		}
	case sel >= 0:
		s.fire(b.Output(int(sel)))
	}
}

// fire executes the node linked to a flow output pin.
func (s *Script) fire(out *Pin) {
	if out == nil || !out.IsFlow() || !out.IsLinked() {
		return
	}
	target := s.pins[out.linked]
	if target == nil {
		return
	}
	if next := s.GetNode(target.node); next != nil {
		s.Execute(next)
	}
}

// DeriveInput pulls the value of a linked input pin from its source output.
// When the source node produces no flow it is a pure data node and runs first
// so the value is fresh. Mismatched types leave the pin untouched. A node
// already being pulled further up the stack is not run again; its current
// output is copied instead.
func (s *Script) DeriveInput(p *Pin) {
	if p == nil || p.Direction != domain.Input || p.IsFlow() || !p.IsLinked() {
		return
	}
	src := s.pins[p.linked]
	if src == nil || src.Type != p.Type {
		return
	}
	p.data = src.data

	owner := s.GetNode(src.node)
	if owner == nil {
		return
	}
	b := owner.Base()
	if b.producesFlow() || s.pulling[b.id] {
		return
	}
	s.pulling[b.id] = true
	s.Execute(owner)
	delete(s.pulling, b.id)
	p.data = src.data
}

// TraverseFromNode records scene as the current scene and executes the node.
// This is the entry point hosts call each frame or event.
func (s *Script) TraverseFromNode(id domain.NodeID, scene ports.Scene) {
	n := s.GetNode(id)
	if n == nil {
		s.logger.Debug("traverse: unknown node", "node", id)
		return
	}
	s.Traverse(n, scene)
}

// Traverse is TraverseFromNode for a node already in hand.
func (s *Script) Traverse(n Node, scene ports.Scene) {
	s.scene = scene
	s.Execute(n)
}

// Halt stops the script: the traversal in progress unwinds without running
// further nodes, and later triggers and resumes do nothing. Hooks use it to
// enforce execution budgets. Loading the script again clears it.
func (s *Script) Halt() { s.halted = true }

// Halted reports whether Halt was called.
func (s *Script) Halted() bool { return s.halted }

func (s *Script) emit(hook func(*domain.NodeEvent), b *BaseNode, sel int8) {
	if hook == nil {
		return
	}
	hook(&domain.NodeEvent{
		Timestamp: time.Now(),
		NodeID:    b.id,
		TypeID:    b.typeID,
		TypeName:  s.factory.TypeName(b.typeID),
		Selector:  sel,
	})
}
