package graph_test

import (
	"testing"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Registration(t *testing.T) {
	h := newHarness()
	f := h.script.Factory()

	assert.True(t, f.Registered(graph.TypeDataBindingGet))
	assert.True(t, f.Registered(graph.TypeDataBindingSet))
	assert.True(t, f.Registered(typeRecord))
	assert.False(t, f.Registered(31337))
	assert.Equal(t, "Record", f.TypeName(typeRecord))
	assert.Empty(t, f.TypeName(31337))

	var names []string
	for _, d := range f.Descriptors() {
		if d.Category == "Test" {
			names = append(names, d.Name)
		}
	}
	assert.Equal(t, []string{"Start", "Record", "Const", "Add"}, names)
}

func TestFactory_RegisterOverwrites(t *testing.T) {
	f := graph.NewFactory()
	f.Register(7, "Old", "A", func(b *graph.BaseNode) graph.Node { return b })
	f.Register(7, "New", "B", func(b *graph.BaseNode) graph.Node { return b })

	require.Len(t, f.Descriptors(), 1)
	assert.Equal(t, "New", f.Descriptors()[0].Name)
	assert.Equal(t, "New", f.TypeName(7))
}

func TestFactory_BindingKindMismatch(t *testing.T) {
	h := newHarness()
	id := h.script.AddDataBinding("Flag", domain.PinTypeBool, domain.ObjectTypeNone, domain.AssetTypeNone)

	_, err := h.script.AddNode(graph.TypeDataBindingGet, 0)
	assert.ErrorIs(t, err, domain.ErrUnknownNodeType, "binding nodes need a binding")

	_, err = h.script.AddDataBindingNode(typeRecord, 0, id)
	assert.ErrorIs(t, err, domain.ErrUnknownNodeType, "plain nodes take no binding")
}

func TestFactory_BindingDescriptors(t *testing.T) {
	h := newHarness()
	id := h.script.AddDataBinding("Ammo", domain.PinTypeInt, domain.ObjectTypeNone, domain.AssetTypeNone)

	got := bindingDescriptors(h)
	require.Len(t, got, 2)
	assert.Equal(t, graph.Descriptor{
		TypeID: graph.TypeDataBindingGet, Name: "Get Ammo", Category: "Data Bindings",
		Kind: domain.NodeTypeDataBindingGet, Binding: id,
	}, got[0])
	assert.Equal(t, "Set Ammo", got[1].Name)

	// Re-initializing keeps binding descriptors.
	h.script.Initialize()
	assert.Len(t, bindingDescriptors(h), 2)
}
