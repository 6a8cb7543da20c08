package nodes

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
)

// PrintString logs its string and float inputs.
type PrintString struct{ *graph.BaseNode }

func newPrintString(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("String", domain.PinTypeString)
	b.AddInput("Float", domain.PinTypeFloat)
	b.AddOutput("", domain.PinTypeFlow)
	return &PrintString{b}
}

func (n *PrintString) OnExecute(x *graph.Exec) int8 {
	x.Logger().Info("print",
		"node", n.ID(),
		"string", n.InputValue(1).AsString(),
		"float", n.InputValue(2).AsFloat(),
	)
	return 0
}

// AppendString concatenates A, B and C.
type AppendString struct{ *graph.BaseNode }

func newAppendString(b *graph.BaseNode) graph.Node {
	b.AddInput("A", domain.PinTypeString)
	b.AddInput("B", domain.PinTypeString)
	b.AddInput("C", domain.PinTypeString)
	b.AddOutput("Return", domain.PinTypeString)
	return &AppendString{b}
}

func (n *AppendString) OnExecute(*graph.Exec) int8 {
	s := n.InputValue(0).AsString() + n.InputValue(1).AsString() + n.InputValue(2).AsString()
	n.SetOutput(0, domain.StringValue(s))
	return domain.SelectAll
}
