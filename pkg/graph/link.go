package graph

import "github.com/aretw0/hexrune/pkg/domain"

// Link is a directed edge from an output pin to an input pin.
type Link struct {
	ID    domain.LinkID
	Start domain.PinID
	End   domain.PinID
}

// Link connects an output pin to an input pin and returns the new link id.
// Arguments given in input/output order are swapped. Unresolvable pins, pins
// of the same node, mismatched types or directions are ignored and yield 0.
// Links already touching either pin are replaced. No cycle detection is done.
func (s *Script) Link(startPinID, endPinID domain.PinID) domain.LinkID {
	return s.LinkPins(s.pins[startPinID], s.pins[endPinID])
}

// LinkPins is Link for pins already in hand.
func (s *Script) LinkPins(start, end *Pin) domain.LinkID {
	if start == nil || end == nil {
		return 0
	}
	if start.Direction == domain.Input && end.Direction == domain.Output {
		start, end = end, start
	}
	if !compatible(start, end) || s.pins[start.id] != start || s.pins[end.id] != end {
		s.logger.Debug("link rejected", "start", start.id, "end", end.id)
		return 0
	}

	s.UnlinkPin(start.id)
	s.UnlinkPin(end.id)

	l := Link{
		ID:    domain.LinkID(s.nextID()),
		Start: start.id,
		End:   end.id,
	}
	s.links = append(s.links, l)
	start.linked = end.id
	end.linked = start.id
	return l.ID
}

// Unlink removes a link record and clears both pins. The input pin's cached
// data is cleared so the next read resolves again.
func (s *Script) Unlink(id domain.LinkID) bool {
	for i, l := range s.links {
		if l.ID != id {
			continue
		}
		s.links = append(s.links[:i], s.links[i+1:]...)
		if start := s.pins[l.Start]; start != nil && start.linked == l.End {
			start.linked = 0
		}
		if end := s.pins[l.End]; end != nil && end.linked == l.Start {
			end.linked = 0
			end.ClearData()
		}
		return true
	}
	return false
}

// UnlinkPin removes every link touching the pin.
func (s *Script) UnlinkPin(pinID domain.PinID) {
	var doomed []domain.LinkID
	for _, l := range s.links {
		if l.Start == pinID || l.End == pinID {
			doomed = append(doomed, l.ID)
		}
	}
	for _, id := range doomed {
		s.Unlink(id)
	}
}

// Links returns a copy of the link records.
func (s *Script) Links() []Link {
	return append([]Link(nil), s.links...)
}

// Relink re-establishes pin back-references for every link record. It is the
// required step between Deserialize and execution. Records whose pins no
// longer resolve or fit are dropped and logged.
func (s *Script) Relink() {
	kept := s.links[:0]
	for _, l := range s.links {
		start, end := s.pins[l.Start], s.pins[l.End]
		if start == nil || end == nil || !compatible(start, end) {
			s.logger.Warn("relink: dropping link", "link", l.ID, "start", l.Start, "end", l.End)
			continue
		}
		start.linked = end.id
		end.linked = start.id
		kept = append(kept, l)
	}
	s.links = kept
}
