package graph_test

import (
	"testing"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNode(t *testing.T) {
	h := newHarness()

	n, err := h.script.AddNode(typeRecord, 5000)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(5000), n.Base().ID())
	assert.Equal(t, typeRecord, n.Base().TypeID())
	assert.Same(t, h.script, n.Base().Script())

	_, err = h.script.AddNode(typeRecord, 5000)
	assert.Error(t, err, "duplicate id")

	_, err = h.script.AddNode(12345, 0)
	assert.ErrorIs(t, err, domain.ErrUnknownNodeType)

	_, err = h.script.AddDataBindingNode(nodes.TypeBranch, 0, 1)
	assert.ErrorIs(t, err, domain.ErrUnknownDataBinding)
}

func TestAddNode_StartNodes(t *testing.T) {
	h := newHarness()
	begin, err := h.script.AddNode(nodes.TypeBeginPlay, domain.BeginPlayNodeID)
	require.NoError(t, err)
	h.add(t, typeRecord)
	start := h.add(t, typeStart)

	assert.Equal(t, []domain.NodeID{begin.Base().ID(), start.Base().ID()}, h.script.StartNodes())

	h.script.RemoveNode(begin.Base().ID())
	assert.Equal(t, []domain.NodeID{start.Base().ID()}, h.script.StartNodes())
}

func TestRemoveNode_SwapRemove(t *testing.T) {
	h := newHarness()
	a := h.add(t, typeStart)
	b := h.add(t, typeRecord)
	c := h.add(t, typeRecord)
	h.link(t, a, 0, b, 0)
	h.link(t, b, 0, c, 0)

	require.True(t, h.script.RemoveNode(a.Base().ID()))

	assert.Len(t, h.script.Nodes(), 2)
	assert.Nil(t, h.script.GetNode(a.Base().ID()))
	assert.False(t, h.script.HasNode(a.Base().ID()))

	// The last node moved into the hole and its index followed.
	idx, ok := h.script.NodeIndex(c.Base().ID())
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Same(t, c, h.script.GetNode(c.Base().ID()))
	assert.Same(t, c, h.script.Nodes()[idx])

	for i, n := range h.script.Nodes() {
		got, _ := h.script.NodeIndex(n.Base().ID())
		assert.Equal(t, i, got)
	}

	// Links touching the removed node are gone, the rest survive.
	assert.False(t, b.Base().Input(0).IsLinked())
	assert.Nil(t, h.script.Pin(a.Base().Output(0).ID()))
	links := h.script.Links()
	require.Len(t, links, 1)
	assert.Equal(t, b.Base().Output(0).ID(), links[0].Start)

	_, ok = h.script.NodePosition(a.Base().ID())
	assert.False(t, ok)
}

func TestRemoveNode_NoOps(t *testing.T) {
	h := newHarness()
	assert.False(t, h.script.RemoveNode(1), "empty graph")

	h.add(t, typeRecord)
	assert.False(t, h.script.RemoveNode(77), "unknown id")
	assert.Len(t, h.script.Nodes(), 1)
}

func TestSetDataOnInput(t *testing.T) {
	h := newHarness()
	rec := h.add(t, typeRecord)
	in := rec.Base().Input(1)

	assert.True(t, h.script.SetDataOnInput(in.ID(), domain.IntValue(3)))
	assert.Equal(t, int32(3), in.Data().AsInt())

	assert.False(t, h.script.SetDataOnInput(in.ID(), domain.StringValue("x")), "type mismatch")
	assert.False(t, h.script.SetDataOnInput(rec.Base().Output(0).ID(), domain.IntValue(1)), "output pin")
	assert.False(t, h.script.SetDataOnInput(rec.Base().Input(0).ID(), domain.BoolValue(true)), "flow pin")
	assert.False(t, h.script.SetDataOnInput(4242, domain.IntValue(1)), "unknown pin")

	assert.True(t, h.script.SetDataOnInput(in.ID(), domain.Unset()))
	assert.True(t, in.IsDataUnset())
	assert.Equal(t, domain.IntValue(0), in.Data(), "unset reads as zero")
}

func TestNodePosition(t *testing.T) {
	h := newHarness()
	n := h.add(t, typeRecord)

	pos, ok := h.script.NodePosition(n.Base().ID())
	require.True(t, ok)
	assert.Zero(t, pos)

	h.script.SetNodePosition(n.Base().ID(), 12.5, -4)
	pos, _ = h.script.NodePosition(n.Base().ID())
	assert.Equal(t, float32(12.5), pos.X)
	assert.Equal(t, float32(-4), pos.Y)
}

func TestDataBinding_GetAndSet(t *testing.T) {
	h := newHarness()
	hp := h.script.AddDataBinding("Health", domain.PinTypeInt, domain.ObjectTypeNone, domain.AssetTypeNone)

	b, ok := h.script.DataBinding(hp)
	require.True(t, ok)
	assert.Equal(t, domain.IntValue(0), b.Value)

	start := h.add(t, typeStart)
	set, err := h.script.AddDataBindingNode(graph.TypeDataBindingSet, 0, hp)
	require.NoError(t, err)
	get, err := h.script.AddDataBindingNode(graph.TypeDataBindingGet, 0, hp)
	require.NoError(t, err)
	rec := h.add(t, typeRecord)

	h.link(t, start, 0, set, 0)
	h.link(t, set, 0, rec, 0)
	h.link(t, get, 0, rec, 1)
	require.True(t, h.script.SetDataOnInput(set.Base().Input(1).ID(), domain.IntValue(42)))

	h.script.Traverse(start, nil)

	b, _ = h.script.DataBinding(hp)
	assert.Equal(t, int32(42), b.Value.AsInt())
	assert.Equal(t, []int32{42}, h.recorded, "get node is pulled after set ran")

	assert.False(t, h.script.SetDataBindingValue(hp, domain.FloatValue(1)), "type mismatch")
}

func TestRemoveDataBinding_Cascades(t *testing.T) {
	h := newHarness()
	keep := h.script.AddDataBinding("Keep", domain.PinTypeBool, domain.ObjectTypeNone, domain.AssetTypeNone)
	drop := h.script.AddDataBinding("Drop", domain.PinTypeString, domain.ObjectTypeNone, domain.AssetTypeNone)

	kept, err := h.script.AddDataBindingNode(graph.TypeDataBindingGet, 0, keep)
	require.NoError(t, err)
	_, err = h.script.AddDataBindingNode(graph.TypeDataBindingGet, 0, drop)
	require.NoError(t, err)
	_, err = h.script.AddDataBindingNode(graph.TypeDataBindingSet, 0, drop)
	require.NoError(t, err)

	assert.Len(t, bindingDescriptors(h), 4)

	require.True(t, h.script.RemoveDataBinding(drop))
	assert.False(t, h.script.RemoveDataBinding(drop))

	require.Len(t, h.script.Nodes(), 1)
	assert.Same(t, kept, h.script.Nodes()[0])
	require.Len(t, h.script.DataBindings(), 1)
	assert.Equal(t, keep, h.script.DataBindings()[0].ID)

	names := []string{}
	for _, d := range bindingDescriptors(h) {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Get Keep", "Set Keep"}, names)
}

func bindingDescriptors(h *harness) []graph.Descriptor {
	var out []graph.Descriptor
	for _, d := range h.script.Factory().Descriptors() {
		if d.Binding != 0 {
			out = append(out, d)
		}
	}
	return out
}
