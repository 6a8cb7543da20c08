package graph

import (
	"fmt"

	"github.com/aretw0/hexrune/pkg/domain"
)

// Constructor builds a concrete node around b, adding its pins in contract order.
type Constructor func(b *BaseNode) Node

// Descriptor is the presentation metadata of a creatable node, used by
// palettes and inspectors. Binding descriptors carry the binding they target.
type Descriptor struct {
	TypeID   domain.TypeID
	Name     string
	Category string
	Kind     domain.NodeType
	Binding  domain.BindingID
}

type registration struct {
	name string
	kind domain.NodeType
	ctor Constructor
}

// Factory maps stable type ids to node constructors.
//
// Type ids are persisted, so registration must happen in a fixed order before
// any script is deserialized.
type Factory struct {
	types       map[domain.TypeID]registration
	descriptors []Descriptor
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{
		types: make(map[domain.TypeID]registration),
	}
}

// Register associates typeID with a plain node constructor and records its descriptor.
// Registering an existing id overwrites it.
func (f *Factory) Register(typeID domain.TypeID, name, category string, ctor Constructor) {
	f.types[typeID] = registration{name: name, kind: domain.NodeTypeDefault, ctor: ctor}
	f.removeDescriptors(func(d Descriptor) bool { return d.TypeID == typeID && d.Binding == 0 })
	f.descriptors = append(f.descriptors, Descriptor{
		TypeID:   typeID,
		Name:     name,
		Category: category,
		Kind:     domain.NodeTypeDefault,
	})
}

// RegisterDataBindingNode associates typeID with a constructor for one of the
// two binding node variants. Descriptors for these are added per binding.
func (f *Factory) RegisterDataBindingNode(typeID domain.TypeID, name string, kind domain.NodeType, ctor Constructor) {
	f.types[typeID] = registration{name: name, kind: kind, ctor: ctor}
}

// Registered reports whether typeID has a constructor.
func (f *Factory) Registered(typeID domain.TypeID) bool {
	_, ok := f.types[typeID]
	return ok
}

// TypeName returns the registered name of typeID, or "" when unknown.
func (f *Factory) TypeName(typeID domain.TypeID) string {
	return f.types[typeID].name
}

// CreateNode builds a plain node. A zero id is replaced by a fresh one.
func (f *Factory) CreateNode(typeID domain.TypeID, id domain.NodeID, s *Script) (Node, error) {
	return f.create(typeID, id, s, 0, nil, nil)
}

// CreateDataBindingNode builds a binding node targeting bindingID.
func (f *Factory) CreateDataBindingNode(typeID domain.TypeID, id domain.NodeID, s *Script, bindingID domain.BindingID) (Node, error) {
	if _, ok := s.DataBinding(bindingID); !ok {
		return nil, fmt.Errorf("binding %d: %w", bindingID, domain.ErrUnknownDataBinding)
	}
	return f.create(typeID, id, s, bindingID, nil, nil)
}

// create builds a node through its registered constructor. Non-nil inputs
// and outputs are persisted pin ids assigned to the pins in construction order.
func (f *Factory) create(typeID domain.TypeID, id domain.NodeID, s *Script, bindingID domain.BindingID, inputs, outputs []domain.PinID) (Node, error) {
	reg, ok := f.types[typeID]
	if !ok {
		return nil, fmt.Errorf("type %d: %w", typeID, domain.ErrUnknownNodeType)
	}
	if reg.kind.IsDataBinding() != (bindingID != 0) {
		return nil, fmt.Errorf("type %d (%s) binding mismatch: %w", typeID, reg.name, domain.ErrUnknownNodeType)
	}
	if id == 0 {
		id = domain.NodeID(s.nextID())
	}
	base := &BaseNode{
		id:             id,
		typeID:         typeID,
		kind:           reg.kind,
		binding:        bindingID,
		script:         s,
		restoreInputs:  inputs,
		restoreOutputs: outputs,
	}
	n := reg.ctor(base)
	base.restoreInputs, base.restoreOutputs = nil, nil
	return n, nil
}

// Descriptors returns the creatable node descriptors in registration order.
func (f *Factory) Descriptors() []Descriptor {
	return append([]Descriptor(nil), f.descriptors...)
}

func (f *Factory) addBindingDescriptors(b DataBinding) {
	f.descriptors = append(f.descriptors,
		Descriptor{TypeID: TypeDataBindingGet, Name: "Get " + b.Name, Category: "Data Bindings", Kind: domain.NodeTypeDataBindingGet, Binding: b.ID},
		Descriptor{TypeID: TypeDataBindingSet, Name: "Set " + b.Name, Category: "Data Bindings", Kind: domain.NodeTypeDataBindingSet, Binding: b.ID},
	)
}

func (f *Factory) removeBindingDescriptors(id domain.BindingID) {
	f.removeDescriptors(func(d Descriptor) bool { return d.Binding == id })
}

func (f *Factory) removeDescriptors(match func(Descriptor) bool) {
	kept := f.descriptors[:0]
	for _, d := range f.descriptors {
		if !match(d) {
			kept = append(kept, d)
		}
	}
	f.descriptors = kept
}
