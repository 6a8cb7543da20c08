package graph

import "github.com/aretw0/hexrune/pkg/domain"

// Type ids of the built-in data binding nodes. Node libraries register
// their own types above these.
const (
	TypeDataBindingGet domain.TypeID = 1
	TypeDataBindingSet domain.TypeID = 2
)

// DataBinding is a named, typed script variable read and written by
// binding get/set nodes.
type DataBinding struct {
	ID         domain.BindingID
	Name       string
	Type       domain.PinType
	ObjectType domain.ObjectType
	AssetType  domain.AssetType
	Value      domain.Value
}

// DataBindingGetNode copies the binding's current value to its only output.
type DataBindingGetNode struct {
	*BaseNode
}

func (n *DataBindingGetNode) OnExecute(x *Exec) int8 {
	if b, ok := x.Script().DataBinding(n.binding); ok {
		n.SetOutput(0, b.Value)
	}
	return domain.SelectAll
}

// DataBindingSetNode writes its value input into the binding, then continues.
type DataBindingSetNode struct {
	*BaseNode
}

func (n *DataBindingSetNode) OnExecute(x *Exec) int8 {
	if in := n.Input(1); in != nil && !in.IsDataUnset() {
		x.Script().SetDataBindingValue(n.binding, in.Data())
	}
	return 0
}

func registerDataBindingNodes(f *Factory) {
	f.RegisterDataBindingNode(TypeDataBindingGet, "DataBindingGet", domain.NodeTypeDataBindingGet, func(b *BaseNode) Node {
		binding, _ := b.script.DataBinding(b.binding)
		b.AddOutput(binding.Name, binding.Type)
		return &DataBindingGetNode{BaseNode: b}
	})
	f.RegisterDataBindingNode(TypeDataBindingSet, "DataBindingSet", domain.NodeTypeDataBindingSet, func(b *BaseNode) Node {
		binding, _ := b.script.DataBinding(b.binding)
		b.AddInput("", domain.PinTypeFlow)
		b.AddInput(binding.Name, binding.Type)
		b.AddOutput("", domain.PinTypeFlow)
		return &DataBindingSetNode{BaseNode: b}
	})
}

// AddDataBinding appends a binding holding the zero value of t and registers
// its get and set descriptors.
func (s *Script) AddDataBinding(name string, t domain.PinType, obj domain.ObjectType, asset domain.AssetType) domain.BindingID {
	b := DataBinding{
		ID:         domain.BindingID(s.nextID()),
		Name:       name,
		Type:       t,
		ObjectType: obj,
		AssetType:  asset,
		Value:      domain.Zero(t),
	}
	s.insertDataBinding(b)
	return b.ID
}

func (s *Script) insertDataBinding(b DataBinding) {
	s.bindings = append(s.bindings, b)
	s.factory.addBindingDescriptors(b)
}

// RemoveDataBinding removes every node referencing the binding, its
// descriptors, and the binding itself.
func (s *Script) RemoveDataBinding(id domain.BindingID) bool {
	idx := s.bindingIndex(id)
	if idx < 0 {
		s.logger.Warn("remove data binding: unknown binding", "binding", id)
		return false
	}

	var doomed []domain.NodeID
	for _, n := range s.nodes {
		b := n.Base()
		if b.kind.IsDataBinding() && b.binding == id {
			doomed = append(doomed, b.id)
		}
	}
	for _, nodeID := range doomed {
		s.RemoveNode(nodeID)
	}

	s.factory.removeBindingDescriptors(id)
	s.bindings = append(s.bindings[:idx], s.bindings[idx+1:]...)
	return true
}

// DataBinding returns a copy of the binding with the given id.
func (s *Script) DataBinding(id domain.BindingID) (DataBinding, bool) {
	idx := s.bindingIndex(id)
	if idx < 0 {
		return DataBinding{}, false
	}
	return s.bindings[idx], true
}

// DataBindings returns a copy of all bindings in creation order.
func (s *Script) DataBindings() []DataBinding {
	return append([]DataBinding(nil), s.bindings...)
}

// SetDataBindingValue stores v when its type matches the binding's type.
func (s *Script) SetDataBindingValue(id domain.BindingID, v domain.Value) bool {
	idx := s.bindingIndex(id)
	if idx < 0 || v.Type() != s.bindings[idx].Type {
		return false
	}
	s.bindings[idx].Value = v
	return true
}

func (s *Script) bindingIndex(id domain.BindingID) int {
	for i := range s.bindings {
		if s.bindings[i].ID == id {
			return i
		}
	}
	return -1
}
