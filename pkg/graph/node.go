package graph

import "github.com/aretw0/hexrune/pkg/domain"

// Node is a unit of behavior in a script graph.
//
// Concrete nodes embed *BaseNode, add their pins in the constructor passed to
// the Factory, and override OnExecute. Pin order is part of a node type's
// contract: it is persisted and it is what OnExecute indexes into.
type Node interface {
	Base() *BaseNode
	// IsStartNode reports whether the node is a trigger entry point.
	IsStartNode() bool
	// OnExecute runs the node's behavior after its inputs are resolved and
	// returns the continuation selector.
	OnExecute(x *Exec) int8
}

// BaseNode holds identity and pins. It provides the default Node behavior.
type BaseNode struct {
	id      domain.NodeID
	typeID  domain.TypeID
	kind    domain.NodeType
	binding domain.BindingID
	inputs  []*Pin
	outputs []*Pin
	script  *Script

	// Persisted pin ids handed to the constructor's pins, in order,
	// while a node is being restored.
	restoreInputs  []domain.PinID
	restoreOutputs []domain.PinID
}

func (b *BaseNode) Base() *BaseNode { return b }

func (b *BaseNode) ID() domain.NodeID             { return b.id }
func (b *BaseNode) TypeID() domain.TypeID         { return b.typeID }
func (b *BaseNode) Kind() domain.NodeType         { return b.kind }
func (b *BaseNode) DataBinding() domain.BindingID { return b.binding }
func (b *BaseNode) Script() *Script               { return b.script }
func (b *BaseNode) Inputs() []*Pin                { return b.inputs }
func (b *BaseNode) Outputs() []*Pin               { return b.outputs }

// IsStartNode is false for ordinary nodes.
func (b *BaseNode) IsStartNode() bool { return false }

// OnExecute does nothing and fans flow out to every linked flow output.
func (b *BaseNode) OnExecute(*Exec) int8 { return domain.SelectAll }

// AddInput appends an input pin with a fresh (or, on restore, persisted) id.
func (b *BaseNode) AddInput(name string, t domain.PinType) *Pin {
	p := b.newPin(name, t, domain.Input)
	b.inputs = append(b.inputs, p)
	return p
}

// AddOutput appends an output pin with a fresh (or, on restore, persisted) id.
func (b *BaseNode) AddOutput(name string, t domain.PinType) *Pin {
	p := b.newPin(name, t, domain.Output)
	b.outputs = append(b.outputs, p)
	return p
}

func (b *BaseNode) newPin(name string, t domain.PinType, dir domain.Direction) *Pin {
	return &Pin{
		id:        b.pinID(dir),
		Name:      name,
		Type:      t,
		Direction: dir,
		node:      b.id,
	}
}

func (b *BaseNode) pinID(dir domain.Direction) domain.PinID {
	queue := &b.restoreOutputs
	if dir == domain.Input {
		queue = &b.restoreInputs
	}
	if len(*queue) > 0 {
		id := (*queue)[0]
		*queue = (*queue)[1:]
		return id
	}
	return domain.PinID(b.script.nextID())
}

// Input returns input pin i, or nil when out of range.
func (b *BaseNode) Input(i int) *Pin {
	if i < 0 || i >= len(b.inputs) {
		return nil
	}
	return b.inputs[i]
}

// Output returns output pin i, or nil when out of range.
func (b *BaseNode) Output(i int) *Pin {
	if i < 0 || i >= len(b.outputs) {
		return nil
	}
	return b.outputs[i]
}

// InputValue returns the resolved value of input i. Missing pins read as Unset.
func (b *BaseNode) InputValue(i int) domain.Value {
	if p := b.Input(i); p != nil {
		return p.Data()
	}
	return domain.Unset()
}

// SetOutput writes v onto output i. Mismatched types and missing pins are ignored.
func (b *BaseNode) SetOutput(i int, v domain.Value) {
	if p := b.Output(i); p != nil {
		p.SetData(v)
	}
}

// producesFlow reports whether the node's first output is a flow pin.
// Nodes that do not produce flow are pure data nodes, re-run on every pull.
func (b *BaseNode) producesFlow() bool {
	return len(b.outputs) > 0 && b.outputs[0].IsFlow()
}

func (b *BaseNode) pins() []*Pin {
	all := make([]*Pin, 0, len(b.inputs)+len(b.outputs))
	all = append(all, b.inputs...)
	return append(all, b.outputs...)
}
