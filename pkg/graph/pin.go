package graph

import "github.com/aretw0/hexrune/pkg/domain"

// Pin is a typed data or flow slot owned by exactly one node.
// Pins refer to their owning node and linked pin by id; the owning
// Script resolves ids, so swap-removing nodes never invalidates them.
type Pin struct {
	id        domain.PinID
	Name      string
	Type      domain.PinType
	Direction domain.Direction

	node   domain.NodeID
	linked domain.PinID
	data   domain.Value
}

// ID returns the pin id.
func (p *Pin) ID() domain.PinID { return p.id }

// Node returns the id of the owning node.
func (p *Pin) Node() domain.NodeID { return p.node }

// LinkedPin returns the id of the pin on the other end of this pin's link, or 0.
func (p *Pin) LinkedPin() domain.PinID { return p.linked }

// IsLinked reports whether the pin currently has a linked pin.
func (p *Pin) IsLinked() bool { return p.linked != 0 }

// IsFlow reports whether the pin carries control instead of data.
func (p *Pin) IsFlow() bool { return p.Type.IsFlow() }

// Data returns the pin's value. An unset pin reads as the zero value of its type.
func (p *Pin) Data() domain.Value {
	if p.data.IsUnset() {
		return domain.Zero(p.Type)
	}
	return p.data
}

// SetData stores v when its type matches the pin's type. Flow pins never
// carry data. Setting an unset value clears the pin.
func (p *Pin) SetData(v domain.Value) bool {
	if v.IsUnset() {
		p.ClearData()
		return true
	}
	if p.IsFlow() || v.Type() != p.Type {
		return false
	}
	p.data = v
	return true
}

// ClearData resets the pin to the unset state.
func (p *Pin) ClearData() { p.data = domain.Unset() }

// IsDataUnset reports whether the pin holds no value.
func (p *Pin) IsDataUnset() bool { return p.data.IsUnset() }

// compatible reports whether out may be linked to in.
func compatible(out, in *Pin) bool {
	return out.Direction == domain.Output &&
		in.Direction == domain.Input &&
		out.node != in.node &&
		out.Type == in.Type
}
