package graph_test

import (
	"bytes"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSample returns a script with every persisted binding kind, editor
// positions and both flow and data links.
func buildSample(t *testing.T) *harness {
	h := newHarness()
	s := h.script

	values := []struct {
		name  string
		value domain.Value
	}{
		{"Alive", domain.BoolValue(true)},
		{"Count", domain.IntValue(-3)},
		{"Speed", domain.FloatValue(2.5)},
		{"Label", domain.StringValue("door")},
		{"Offset", domain.VectorValue(math32.Vec3(1, 2, 3))},
		{"Basis", domain.MatrixValue(math32.Matrix4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 4, 5, 6, 1})},
		{"Spin", domain.QuaternionValue(math32.NewQuat(0, 0.5, 0, 1))},
		{"Target", domain.EntityValue(77)},
		{"Mesh", domain.AssetValue(9001)},
	}
	var count domain.BindingID
	for _, v := range values {
		id := s.AddDataBinding(v.name, v.value.Type(), domain.ObjectTypeNone, domain.AssetTypeNone)
		require.True(t, s.SetDataBindingValue(id, v.value))
		if v.name == "Count" {
			count = id
		}
	}
	s.AddDataBinding("Crowd", domain.PinTypeEntityList, domain.ObjectTypeNone, domain.AssetTypeNone)
	s.AddDataBinding("Light", domain.PinTypeComponentPointer, domain.ObjectTypePointLight, domain.AssetTypeNone)

	begin, err := s.AddNode(nodes.TypeBeginPlay, domain.BeginPlayNodeID)
	require.NoError(t, err)
	get, err := s.AddDataBindingNode(graph.TypeDataBindingGet, 0, count)
	require.NoError(t, err)
	rec := h.add(t, typeRecord)
	h.link(t, begin, 0, rec, 0)
	h.link(t, get, 0, rec, 1)
	s.SetNodePosition(begin.Base().ID(), 10, 20)
	s.SetNodePosition(rec.Base().ID(), -5.5, 0.25)
	return h
}

func TestSerialize_SizeMatches(t *testing.T) {
	h := buildSample(t)

	var buf bytes.Buffer
	require.NoError(t, h.script.Serialize(&buf))
	assert.Equal(t, h.script.Size(), buf.Len())

	empty := newHarness()
	data, err := empty.script.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, data, "three zero counts")
}

func TestSerialize_RoundTrip(t *testing.T) {
	src := buildSample(t)
	data, err := src.script.MarshalBinary()
	require.NoError(t, err)

	dst := newHarness()
	require.NoError(t, dst.script.Load(data))

	assert.Equal(t, src.script.DataBindings(), dst.script.DataBindings())
	assert.Equal(t, src.script.Links(), dst.script.Links())
	assert.Equal(t, src.script.StartNodes(), dst.script.StartNodes())
	require.Len(t, dst.script.Nodes(), len(src.script.Nodes()))

	for i, want := range src.script.Nodes() {
		got := dst.script.Nodes()[i].Base()
		w := want.Base()
		assert.Equal(t, w.ID(), got.ID())
		assert.Equal(t, w.TypeID(), got.TypeID())
		assert.Equal(t, w.Kind(), got.Kind())
		assert.Equal(t, w.DataBinding(), got.DataBinding())
		for j, p := range w.Inputs() {
			assert.Equal(t, p.ID(), got.Inputs()[j].ID())
			assert.Equal(t, p.LinkedPin(), got.Inputs()[j].LinkedPin())
		}
		for j, p := range w.Outputs() {
			assert.Equal(t, p.ID(), got.Outputs()[j].ID())
			assert.Equal(t, p.LinkedPin(), got.Outputs()[j].LinkedPin())
		}
		wantPos, _ := src.script.NodePosition(w.ID())
		gotPos, _ := dst.script.NodePosition(got.ID())
		assert.Equal(t, wantPos, gotPos)
	}

	again, err := dst.script.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, again, "re-serializing is stable")

	// The restored script runs.
	dst.script.BeginPlay(nil)
	assert.Equal(t, []int32{-3}, dst.recorded)
}

func TestDeserialize_DoesNotRelink(t *testing.T) {
	data, err := buildSample(t).script.MarshalBinary()
	require.NoError(t, err)

	h := newHarness()
	require.NoError(t, h.script.Deserialize(bytes.NewReader(data)))

	require.Len(t, h.script.Links(), 2)
	for _, n := range h.script.Nodes() {
		for _, p := range n.Base().Inputs() {
			assert.False(t, p.IsLinked())
		}
	}

	h.script.Relink()
	for _, l := range h.script.Links() {
		assert.Equal(t, l.End, h.script.Pin(l.Start).LinkedPin())
		assert.Equal(t, l.Start, h.script.Pin(l.End).LinkedPin())
	}
}

func TestDeserialize_ReplacesExistingGraph(t *testing.T) {
	data, err := buildSample(t).script.MarshalBinary()
	require.NoError(t, err)

	h := newHarness()
	stale := h.add(t, typeRecord)
	h.script.AddDataBinding("Stale", domain.PinTypeBool, domain.ObjectTypeNone, domain.AssetTypeNone)

	require.NoError(t, h.script.Load(data))
	assert.False(t, h.script.HasNode(stale.Base().ID()))
	for _, b := range h.script.DataBindings() {
		assert.NotEqual(t, "Stale", b.Name)
	}
}

func TestDeserialize_Truncated(t *testing.T) {
	data, err := buildSample(t).script.MarshalBinary()
	require.NoError(t, err)

	h := newHarness()
	err = h.script.Load(data[:len(data)-3])
	assert.ErrorIs(t, err, domain.ErrTruncated)
	assert.Empty(t, h.script.Nodes(), "failed loads leave the script empty")
	assert.Empty(t, h.script.DataBindings())
	assert.Empty(t, h.script.Links())
}

func TestDeserialize_UnknownNodeType(t *testing.T) {
	data, err := buildSample(t).script.MarshalBinary()
	require.NoError(t, err)

	// No test library: the Record node type is unknown here.
	s := graph.New(graph.WithNodeLibrary(nodes.Register))
	err = s.Load(data)
	assert.ErrorIs(t, err, domain.ErrUnknownNodeType)
	assert.Empty(t, s.Nodes())
}

func TestRelink_DropsIncompatibleRecords(t *testing.T) {
	data, err := buildSample(t).script.MarshalBinary()
	require.NoError(t, err)

	// Record now takes a Float, so the Int binding link no longer fits.
	h := newHarness(graph.WithNodeLibrary(func(f *graph.Factory) {
		f.Register(typeRecord, "Record", "Test", func(b *graph.BaseNode) graph.Node {
			b.AddInput("", domain.PinTypeFlow)
			b.AddInput("Value", domain.PinTypeFloat)
			b.AddOutput("", domain.PinTypeFlow)
			return b
		})
	}))
	require.NoError(t, h.script.Deserialize(bytes.NewReader(data)))
	require.Len(t, h.script.Links(), 2)

	h.script.Relink()

	links := h.script.Links()
	require.Len(t, links, 1)
	assert.Equal(t, h.script.GetNode(domain.BeginPlayNodeID).Base().Output(0).ID(), links[0].Start)
}

func TestLoad_SequentialIDsSurviveRoundTrip(t *testing.T) {
	src := newHarness()
	branch := src.add(t, nodes.TypeBranch)
	seq := src.add(t, nodes.TypeSequence)
	src.link(t, branch, 1, seq, 0)

	data, err := src.script.MarshalBinary()
	require.NoError(t, err)

	// Same generator start as src, so fresh ids would collide with persisted ones.
	dst := newHarness()
	require.NoError(t, dst.script.Load(data))

	falsePin := dst.script.GetNode(branch.Base().ID()).Base().Output(1)
	require.NotNil(t, falsePin)
	assert.Equal(t, branch.Base().Output(1).ID(), falsePin.ID())
	assert.Same(t, falsePin, dst.script.Pin(falsePin.ID()))
	require.Len(t, dst.script.Links(), 1)
	assert.Equal(t, seq.Base().Input(0).ID(), falsePin.LinkedPin())

	again, err := dst.script.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestLoad_FreshIDsSkipPersistedOnes(t *testing.T) {
	src := newHarness()
	a := src.add(t, nodes.TypeBranch)
	b := src.add(t, nodes.TypeSequence)
	src.link(t, a, 0, b, 0)
	src.script.AddDataBinding("Flag", domain.PinTypeBool, domain.ObjectTypeNone, domain.AssetTypeNone)

	data, err := src.script.MarshalBinary()
	require.NoError(t, err)

	dst := newHarness()
	require.NoError(t, dst.script.Load(data))

	used := map[uint64]bool{}
	for _, n := range dst.script.Nodes() {
		used[uint64(n.Base().ID())] = true
		for _, p := range n.Base().Inputs() {
			used[uint64(p.ID())] = true
		}
		for _, p := range n.Base().Outputs() {
			used[uint64(p.ID())] = true
		}
	}
	for _, l := range dst.script.Links() {
		used[uint64(l.ID)] = true
	}
	for _, bd := range dst.script.DataBindings() {
		used[uint64(bd.ID)] = true
	}

	fresh := dst.add(t, nodes.TypeSequence)
	assert.False(t, used[uint64(fresh.Base().ID())], "node id reused")
	for _, p := range append(fresh.Base().Inputs(), fresh.Base().Outputs()...) {
		assert.False(t, used[uint64(p.ID())], "pin id %d reused", p.ID())
	}
	link := dst.link(t, b, 1, fresh, 0)
	assert.False(t, used[uint64(link)], "link id reused")
	binding := dst.script.AddDataBinding("Other", domain.PinTypeInt, domain.ObjectTypeNone, domain.AssetTypeNone)
	assert.False(t, used[uint64(binding)], "binding id reused")

	// The original link is untouched by the new one.
	assert.Len(t, dst.script.Links(), 2)
	assert.Equal(t, b.Base().Input(0).ID(), dst.script.GetNode(a.Base().ID()).Base().Output(0).LinkedPin())
}
