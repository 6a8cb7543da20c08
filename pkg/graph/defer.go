package graph

import "github.com/aretw0/hexrune/pkg/domain"

// Deferral is a node suspended with domain.Defer.
type Deferral struct {
	NodeID    domain.NodeID
	Remaining float32
}

func (s *Script) deferNode(id domain.NodeID, duration float32) {
	for i := range s.deferred {
		if s.deferred[i].NodeID == id {
			s.deferred[i].Remaining = duration
			return
		}
	}
	s.deferred = append(s.deferred, Deferral{NodeID: id, Remaining: duration})
}

func (s *Script) cancelDeferral(id domain.NodeID) bool {
	for i := range s.deferred {
		if s.deferred[i].NodeID == id {
			s.deferred = append(s.deferred[:i], s.deferred[i+1:]...)
			return true
		}
	}
	return false
}

// Deferred returns the pending deferrals in the order they were suspended.
func (s *Script) Deferred() []Deferral {
	return append([]Deferral(nil), s.deferred...)
}

// Resume re-enters flow propagation from output 0 of a suspended node,
// using the scene of the most recent traversal.
func (s *Script) Resume(id domain.NodeID) bool {
	if !s.cancelDeferral(id) {
		return false
	}
	n := s.GetNode(id)
	if n == nil {
		return false
	}
	s.fire(n.Base().Output(0))
	return true
}

// AdvanceDeferred counts pending timers down by dt and resumes the ones that
// expire, in suspension order. Nothing resumes unless the host calls this.
func (s *Script) AdvanceDeferred(dt float32) {
	var expired []domain.NodeID
	for i := range s.deferred {
		s.deferred[i].Remaining -= dt
		if s.deferred[i].Remaining <= 0 {
			expired = append(expired, s.deferred[i].NodeID)
		}
	}
	for _, id := range expired {
		// An earlier resume may have re-triggered this node and restarted its timer.
		if d, ok := s.deferral(id); ok && d.Remaining <= 0 {
			s.Resume(id)
		}
	}
}

func (s *Script) deferral(id domain.NodeID) (Deferral, bool) {
	for _, d := range s.deferred {
		if d.NodeID == id {
			return d, true
		}
	}
	return Deferral{}, false
}
