package graph_test

import (
	"testing"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink_Symmetric(t *testing.T) {
	h := newHarness()
	start := h.add(t, typeStart)
	rec := h.add(t, typeRecord)

	id := h.link(t, start, 0, rec, 0)

	out := start.Base().Output(0)
	in := rec.Base().Input(0)
	assert.Equal(t, in.ID(), out.LinkedPin())
	assert.Equal(t, out.ID(), in.LinkedPin())
	assert.Equal(t, rec.Base().ID(), h.script.Pin(out.LinkedPin()).Node())

	links := h.script.Links()
	require.Len(t, links, 1)
	assert.Equal(t, id, links[0].ID)
	assert.Equal(t, out.ID(), links[0].Start)
	assert.Equal(t, in.ID(), links[0].End)
}

func TestLink_SwapsReversedArguments(t *testing.T) {
	h := newHarness()
	start := h.add(t, typeStart)
	rec := h.add(t, typeRecord)

	id := h.script.Link(rec.Base().Input(0).ID(), start.Base().Output(0).ID())
	require.NotZero(t, id)

	links := h.script.Links()
	require.Len(t, links, 1)
	assert.Equal(t, start.Base().Output(0).ID(), links[0].Start)
	assert.Equal(t, rec.Base().Input(0).ID(), links[0].End)
}

func TestLink_Rejects(t *testing.T) {
	h := newHarness()
	start := h.add(t, typeStart)
	rec := h.add(t, typeRecord)
	other := h.add(t, typeRecord)
	c := h.add(t, typeConst)

	tests := []struct {
		name       string
		start, end domain.PinID
	}{
		{"unknown pin", start.Base().Output(0).ID(), 42},
		{"same node", rec.Base().Output(0).ID(), rec.Base().Input(0).ID()},
		{"type mismatch", c.Base().Output(0).ID(), rec.Base().Input(0).ID()},
		{"output to output", rec.Base().Output(0).ID(), other.Base().Output(0).ID()},
		{"input to input", rec.Base().Input(0).ID(), other.Base().Input(0).ID()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, h.script.Link(tt.start, tt.end))
		})
	}
	assert.Empty(t, h.script.Links())
}

func TestLink_ReplacesExisting(t *testing.T) {
	h := newHarness()
	a := h.add(t, typeConst)
	b := h.add(t, typeConst)
	rec := h.add(t, typeRecord)

	h.link(t, a, 0, rec, 1)
	h.link(t, b, 0, rec, 1)

	links := h.script.Links()
	require.Len(t, links, 1)
	assert.Equal(t, b.Base().Output(0).ID(), links[0].Start)
	assert.False(t, a.Base().Output(0).IsLinked())
	assert.Equal(t, b.Base().Output(0).ID(), rec.Base().Input(1).LinkedPin())
}

func TestUnlink_ClearsBothEnds(t *testing.T) {
	h := newHarness()
	c := h.add(t, typeConst)
	rec := h.add(t, typeRecord)
	id := h.link(t, c, 0, rec, 1)

	h.constValue = 7
	h.script.DeriveInput(rec.Base().Input(1))
	require.Equal(t, int32(7), rec.Base().InputValue(1).AsInt())

	assert.True(t, h.script.Unlink(id))
	assert.False(t, c.Base().Output(0).IsLinked())
	assert.False(t, rec.Base().Input(1).IsLinked())
	assert.True(t, rec.Base().Input(1).IsDataUnset())
	assert.False(t, h.script.Unlink(id), "already gone")
}
