package graph

import "github.com/aretw0/hexrune/pkg/domain"

// Suspender is implemented by nodes whose flow outputs fire later from a
// resume, never during their own execution.
type Suspender interface {
	Suspends() bool
}

// FlowCycle returns the nodes of a flow cycle in link order, or nil when the
// flow links are acyclic. Edges leaving a suspending node are skipped because
// they never run on the call stack that entered the node.
func (s *Script) FlowCycle() []domain.NodeID {
	const (
		unseen = iota
		open
		done
	)
	type frame struct {
		id   domain.NodeID
		next []domain.NodeID
	}

	state := make(map[domain.NodeID]int, len(s.nodes))
	for _, root := range s.nodes {
		rootID := root.Base().id
		if state[rootID] != unseen {
			continue
		}
		state[rootID] = open
		stack := []frame{{id: rootID, next: s.flowSuccessors(root)}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				state[top.id] = done
				stack = stack[:len(stack)-1]
				continue
			}
			next := top.next[0]
			top.next = top.next[1:]

			switch state[next] {
			case open:
				for i := range stack {
					if stack[i].id != next {
						continue
					}
					cycle := make([]domain.NodeID, 0, len(stack)-i)
					for _, f := range stack[i:] {
						cycle = append(cycle, f.id)
					}
					return cycle
				}
			case unseen:
				state[next] = open
				stack = append(stack, frame{id: next, next: s.flowSuccessors(s.GetNode(next))})
			}
		}
	}
	return nil
}

func (s *Script) flowSuccessors(n Node) []domain.NodeID {
	if n == nil {
		return nil
	}
	if sp, ok := n.(Suspender); ok && sp.Suspends() {
		return nil
	}
	var ids []domain.NodeID
	for _, out := range n.Base().outputs {
		if !out.IsFlow() || !out.IsLinked() {
			continue
		}
		if target := s.pins[out.linked]; target != nil && s.HasNode(target.node) {
			ids = append(ids, target.node)
		}
	}
	return ids
}
