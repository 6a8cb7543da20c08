package graph_test

import (
	"testing"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/nodes"
	"github.com/stretchr/testify/assert"
)

func TestFlowCycle(t *testing.T) {
	t.Run("acyclic", func(t *testing.T) {
		h := newHarness()
		start := h.add(t, typeStart)
		a := h.add(t, typeRecord)
		b := h.add(t, typeRecord)
		h.link(t, start, 0, a, 0)
		h.link(t, a, 0, b, 0)
		assert.Nil(t, h.script.FlowCycle())
	})

	t.Run("loop", func(t *testing.T) {
		h := newHarness()
		seq := h.add(t, nodes.TypeSequence)
		a := h.add(t, typeRecord)
		b := h.add(t, typeRecord)
		h.link(t, seq, 1, a, 0)
		h.link(t, a, 0, b, 0)
		h.link(t, b, 0, seq, 0)

		assert.ElementsMatch(t,
			[]domain.NodeID{seq.Base().ID(), a.Base().ID(), b.Base().ID()},
			h.script.FlowCycle())
	})

	t.Run("through a delay", func(t *testing.T) {
		h := newHarness()
		a := h.add(t, typeRecord)
		delay := h.add(t, nodes.TypeDelay)
		h.link(t, a, 0, delay, 0)
		h.link(t, delay, 0, a, 0)
		assert.Nil(t, h.script.FlowCycle())
	})
}

func TestHalt(t *testing.T) {
	h := newHarness()
	start := h.add(t, typeStart)
	a := h.add(t, typeRecord)
	b := h.add(t, typeRecord)
	h.link(t, start, 0, a, 0)
	h.link(t, a, 0, b, 0)

	h.script.SetLifecycleHooks(domain.LifecycleHooks{
		OnNodeEnter: func(e *domain.NodeEvent) {
			if e.NodeID == b.Base().ID() {
				h.script.Halt()
			}
		},
	})
	h.script.Traverse(start, nil)
	assert.Equal(t, []domain.NodeID{a.Base().ID()}, h.visited)
	assert.True(t, h.script.Halted())

	h.script.Traverse(start, nil)
	assert.Len(t, h.visited, 1, "a halted script stays halted")
}
