package graph_test

import (
	"testing"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/guid"
	"github.com/aretw0/hexrune/pkg/nodes"
	"github.com/stretchr/testify/require"
)

// Test-only node types, clear of the standard library ids.
const (
	typeStart  domain.TypeID = 900
	typeRecord domain.TypeID = 901
	typeConst  domain.TypeID = 902
	typeAdd    domain.TypeID = 903
)

// harness owns a script with the standard library plus recording nodes.
type harness struct {
	script *graph.Script

	visited    []domain.NodeID
	recorded   []int32
	constValue int32
	constRuns  int
}

type startNode struct{ *graph.BaseNode }

func (startNode) IsStartNode() bool { return true }

func (startNode) OnExecute(*graph.Exec) int8 { return 0 }

type recordNode struct {
	*graph.BaseNode
	h *harness
}

func (n *recordNode) OnExecute(*graph.Exec) int8 {
	n.h.visited = append(n.h.visited, n.ID())
	n.h.recorded = append(n.h.recorded, n.InputValue(1).AsInt())
	return domain.SelectAll
}

type constNode struct {
	*graph.BaseNode
	h *harness
}

func (n *constNode) OnExecute(*graph.Exec) int8 {
	n.h.constRuns++
	n.SetOutput(0, domain.IntValue(n.h.constValue))
	return domain.SelectAll
}

type addNode struct{ *graph.BaseNode }

func (n *addNode) OnExecute(*graph.Exec) int8 {
	n.SetOutput(0, domain.IntValue(n.InputValue(0).AsInt()+n.InputValue(1).AsInt()))
	return domain.SelectAll
}

func (h *harness) library(f *graph.Factory) {
	f.Register(typeStart, "Start", "Test", func(b *graph.BaseNode) graph.Node {
		b.AddOutput("", domain.PinTypeFlow)
		return &startNode{b}
	})
	f.Register(typeRecord, "Record", "Test", func(b *graph.BaseNode) graph.Node {
		b.AddInput("", domain.PinTypeFlow)
		b.AddInput("Value", domain.PinTypeInt)
		b.AddOutput("", domain.PinTypeFlow)
		return &recordNode{BaseNode: b, h: h}
	})
	f.Register(typeConst, "Const", "Test", func(b *graph.BaseNode) graph.Node {
		b.AddOutput("Value", domain.PinTypeInt)
		return &constNode{BaseNode: b, h: h}
	})
	f.Register(typeAdd, "Add", "Test", func(b *graph.BaseNode) graph.Node {
		b.AddInput("A", domain.PinTypeInt)
		b.AddInput("B", domain.PinTypeInt)
		b.AddOutput("Sum", domain.PinTypeInt)
		return &addNode{b}
	})
}

func newHarness(opts ...graph.Option) *harness {
	h := &harness{}
	base := []graph.Option{
		graph.WithIDGenerator(guid.NewSequence(1024)),
		graph.WithNodeLibrary(nodes.Register),
		graph.WithNodeLibrary(h.library),
	}
	h.script = graph.New(append(base, opts...)...)
	return h
}

func (h *harness) add(t *testing.T, typeID domain.TypeID) graph.Node {
	t.Helper()
	n, err := h.script.AddNode(typeID, 0)
	require.NoError(t, err)
	return n
}

// link connects output out of a to input in of b and fails the test on rejection.
func (h *harness) link(t *testing.T, a graph.Node, out int, b graph.Node, in int) domain.LinkID {
	t.Helper()
	id := h.script.Link(a.Base().Output(out).ID(), b.Base().Input(in).ID())
	require.NotZero(t, id, "link rejected")
	return id
}
