package graph_test

import (
	"testing"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delayed(t *testing.T, duration float32) (*harness, graph.Node, graph.Node, graph.Node) {
	h := newHarness()
	start := h.add(t, typeStart)
	delay := h.add(t, nodes.TypeDelay)
	rec := h.add(t, typeRecord)
	h.link(t, start, 0, delay, 0)
	h.link(t, delay, 0, rec, 0)
	h.script.SetDataOnInput(delay.Base().Input(1).ID(), domain.FloatValue(duration))
	return h, start, delay, rec
}

func TestDelay_SuspendsUntilAdvanced(t *testing.T) {
	h, start, delay, rec := delayed(t, 1.5)

	h.script.Traverse(start, nil)
	assert.Empty(t, h.visited, "flow stops at the delay")
	require.Equal(t, []graph.Deferral{{NodeID: delay.Base().ID(), Remaining: 1.5}}, h.script.Deferred())

	h.script.AdvanceDeferred(1)
	assert.Empty(t, h.visited)

	h.script.AdvanceDeferred(0.5)
	assert.Equal(t, []domain.NodeID{rec.Base().ID()}, h.visited)
	assert.Empty(t, h.script.Deferred())
}

func TestDelay_Resume(t *testing.T) {
	h, start, delay, rec := delayed(t, 10)

	h.script.Traverse(start, nil)
	assert.True(t, h.script.Resume(delay.Base().ID()))
	assert.Equal(t, []domain.NodeID{rec.Base().ID()}, h.visited)

	assert.False(t, h.script.Resume(delay.Base().ID()), "not pending anymore")
	assert.False(t, h.script.Resume(rec.Base().ID()), "never deferred")
}

func TestDelay_RetriggerRestartsTimer(t *testing.T) {
	h, start, delay, _ := delayed(t, 2)

	h.script.Traverse(start, nil)
	h.script.AdvanceDeferred(1.5)
	h.script.Traverse(start, nil)

	require.Len(t, h.script.Deferred(), 1)
	assert.Equal(t, float32(2), h.script.Deferred()[0].Remaining)
	assert.Equal(t, delay.Base().ID(), h.script.Deferred()[0].NodeID)
}

func TestDelay_RemovedNodeIsForgotten(t *testing.T) {
	h, start, delay, _ := delayed(t, 1)

	h.script.Traverse(start, nil)
	h.script.RemoveNode(delay.Base().ID())

	assert.Empty(t, h.script.Deferred())
	assert.NotPanics(t, func() { h.script.AdvanceDeferred(5) })
	assert.Empty(t, h.visited)
}

func TestAdvanceDeferred_HonorsTimerRestartedByEarlierResume(t *testing.T) {
	h := newHarness()
	first := h.add(t, nodes.TypeDelay)
	second := h.add(t, nodes.TypeDelay)
	rec := h.add(t, typeRecord)
	h.link(t, first, 0, second, 0)
	h.link(t, second, 0, rec, 0)
	h.script.SetDataOnInput(first.Base().Input(1).ID(), domain.FloatValue(1))
	h.script.SetDataOnInput(second.Base().Input(1).ID(), domain.FloatValue(1))

	h.script.Traverse(first, nil)
	h.script.Traverse(second, nil)
	require.Len(t, h.script.Deferred(), 2)

	// Both expire; resuming first re-triggers second, which must wait again.
	h.script.AdvanceDeferred(1)
	assert.Empty(t, h.visited)
	assert.Equal(t, []graph.Deferral{{NodeID: second.Base().ID(), Remaining: 1}}, h.script.Deferred())

	h.script.AdvanceDeferred(1)
	assert.Equal(t, []domain.NodeID{rec.Base().ID()}, h.visited)
	assert.Empty(t, h.script.Deferred())
}
