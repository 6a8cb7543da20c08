package nodes

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/chewxy/math32"
)

// Tolerance is the absolute difference under which two floats compare equal.
const Tolerance float32 = 1e-4

// NearlyEqual reports whether a and b differ by at most Tolerance.
func NearlyEqual(a, b float32) bool {
	return math32.Abs(a-b) <= Tolerance
}

// FloatCompare is a pure data node producing op(A, B).
type FloatCompare struct {
	*graph.BaseNode
	op func(a, b float32) bool
}

func floatCompare(op func(a, b float32) bool) graph.Constructor {
	return func(b *graph.BaseNode) graph.Node {
		b.AddInput("A", domain.PinTypeFloat)
		b.AddInput("B", domain.PinTypeFloat)
		b.AddOutput("Result", domain.PinTypeBool)
		return &FloatCompare{BaseNode: b, op: op}
	}
}

func (n *FloatCompare) OnExecute(*graph.Exec) int8 {
	n.SetOutput(0, domain.BoolValue(n.op(n.InputValue(0).AsFloat(), n.InputValue(1).AsFloat())))
	return domain.SelectAll
}

// IntCompare is a pure data node producing op(A, B).
type IntCompare struct {
	*graph.BaseNode
	op func(a, b int32) bool
}

func intCompare(op func(a, b int32) bool) graph.Constructor {
	return func(b *graph.BaseNode) graph.Node {
		b.AddInput("A", domain.PinTypeInt)
		b.AddInput("B", domain.PinTypeInt)
		b.AddOutput("Result", domain.PinTypeBool)
		return &IntCompare{BaseNode: b, op: op}
	}
}

func (n *IntCompare) OnExecute(*graph.Exec) int8 {
	n.SetOutput(0, domain.BoolValue(n.op(n.InputValue(0).AsInt(), n.InputValue(1).AsInt())))
	return domain.SelectAll
}
