package graph

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/ports"
)

// BeginPlay runs the begin-play trigger, if the script has one.
func (s *Script) BeginPlay(scene ports.Scene) {
	s.runTrigger(domain.BeginPlayNodeID, scene)
}

// Tick runs the tick trigger, if the script has one.
func (s *Script) Tick(scene ports.Scene) {
	s.runTrigger(domain.TickNodeID, scene)
}

// EndPlay runs the end-play trigger, if the script has one.
func (s *Script) EndPlay(scene ports.Scene) {
	s.runTrigger(domain.EndPlayNodeID, scene)
}

// BeginOverlap runs the begin-overlap trigger with the overlapping entities
// written to its "Triggering" and "Other" outputs.
func (s *Script) BeginOverlap(scene ports.Scene, triggering, other domain.Entity) {
	s.runOverlap(domain.BeginOverlapNodeID, scene, triggering, other)
}

// EndOverlap is BeginOverlap for the end-overlap trigger.
func (s *Script) EndOverlap(scene ports.Scene, triggering, other domain.Entity) {
	s.runOverlap(domain.EndOverlapNodeID, scene, triggering, other)
}

func (s *Script) runTrigger(id domain.NodeID, scene ports.Scene) {
	if n := s.GetNode(id); n != nil {
		s.Traverse(n, scene)
	}
}

func (s *Script) runOverlap(id domain.NodeID, scene ports.Scene, triggering, other domain.Entity) {
	n := s.GetNode(id)
	if n == nil {
		return
	}
	b := n.Base()
	b.SetOutput(1, domain.EntityValue(triggering))
	b.SetOutput(2, domain.EntityValue(other))
	s.Traverse(n, scene)
}
