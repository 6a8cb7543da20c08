package dsl_test

import (
	"testing"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/dsl"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/guid"
	"github.com/aretw0/hexrune/pkg/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScript() *graph.Script {
	return graph.New(graph.WithIDGenerator(guid.NewSequence(1024)), graph.WithNodeLibrary(nodes.Register))
}

func TestBuilder_SimpleFlow(t *testing.T) {
	b := dsl.New(newScript())
	b.Binding("n", domain.IntValue(3))

	// Forward references resolve at Build.
	b.Add("begin", nodes.TypeBeginPlay).Go(0, "loop")
	b.Add("loop", nodes.TypeForLoop).At(200, 0).Literal(1, domain.IntValue(0))
	b.Get("count", "n").Feed(0, "loop", 2)

	s, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []domain.NodeID{domain.BeginPlayNodeID}, s.StartNodes())
	assert.Len(t, s.Nodes(), 3)
	assert.Len(t, s.Links(), 2)

	loop := b.Node("loop")
	require.NotNil(t, loop)
	pos, ok := s.NodePosition(loop.Base().ID())
	require.True(t, ok)
	assert.Equal(t, graph.EditorState{X: 200, Y: 0}, pos)
	assert.True(t, loop.Base().Input(0).IsLinked())
	assert.True(t, loop.Base().Input(2).IsLinked())
	assert.Equal(t, domain.IntValue(0), loop.Base().Input(1).Data())
}

func TestBuilder_AddIsIdempotent(t *testing.T) {
	b := dsl.New(newScript())
	first := b.Add("print", nodes.TypePrintString)
	second := b.Add("print", nodes.TypeBranch)

	assert.Same(t, first, second)
	s, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, s.Nodes(), 1)
}

func TestBuilder_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		b := dsl.New(newScript())
		b.Add("mystery", 999).At(1, 1).Go(0, "other")
		_, err := b.Build()
		assert.ErrorIs(t, err, domain.ErrUnknownNodeType)
		assert.Nil(t, b.Node("mystery"))
	})

	t.Run("unknown binding", func(t *testing.T) {
		b := dsl.New(newScript())
		b.Get("get", "missing")
		_, err := b.Build()
		assert.ErrorIs(t, err, domain.ErrUnknownDataBinding)
	})

	t.Run("unknown link target", func(t *testing.T) {
		b := dsl.New(newScript())
		b.Add("begin", nodes.TypeBeginPlay).Go(0, "nowhere")
		_, err := b.Build()
		assert.ErrorContains(t, err, "nowhere")
	})

	t.Run("incompatible pins", func(t *testing.T) {
		b := dsl.New(newScript())
		b.Binding("name", domain.StringValue("x"))
		b.Get("name", "name").Feed(0, "branch", 1)
		b.Add("branch", nodes.TypeBranch)
		_, err := b.Build()
		assert.ErrorContains(t, err, "rejected")
	})
}
