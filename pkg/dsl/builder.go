package dsl

import (
	"fmt"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/nodes"
)

// Builder manages the script construction.
type Builder struct {
	script   *graph.Script
	nodes    map[string]*NodeBuilder
	bindings map[string]domain.BindingID
	links    []pendingLink
	err      error
}

type pendingLink struct {
	from string
	out  int
	to   string
	in   int
}

// New creates a builder adding to s. The script's factory must know every
// type id passed to Add.
func New(s *graph.Script) *Builder {
	return &Builder{
		script:   s,
		nodes:    make(map[string]*NodeBuilder),
		bindings: make(map[string]domain.BindingID),
	}
}

// Binding declares a data binding typed and initialized by v.
// Declaring the same name twice keeps the first binding.
func (b *Builder) Binding(name string, v domain.Value) *Builder {
	if _, ok := b.bindings[name]; ok || b.err != nil {
		return b
	}
	id := b.script.AddDataBinding(name, v.Type(), domain.ObjectTypeNone, domain.AssetTypeNone)
	b.script.SetDataBindingValue(id, v)
	b.bindings[name] = id
	return b
}

// Add creates a node of typeID under name. Trigger types get their reserved
// node id so the host can invoke them. If name is taken, the existing
// builder is returned.
func (b *Builder) Add(name string, typeID domain.TypeID) *NodeBuilder {
	if nb, ok := b.nodes[name]; ok {
		return nb
	}
	id, _ := nodes.TriggerNodeID(typeID)
	return b.insert(name, func() (graph.Node, error) {
		return b.script.AddNode(typeID, id)
	})
}

// Get creates a node reading the named binding.
func (b *Builder) Get(name, binding string) *NodeBuilder {
	return b.bindingNode(name, binding, graph.TypeDataBindingGet)
}

// Set creates a node writing the named binding.
func (b *Builder) Set(name, binding string) *NodeBuilder {
	return b.bindingNode(name, binding, graph.TypeDataBindingSet)
}

func (b *Builder) bindingNode(name, binding string, typeID domain.TypeID) *NodeBuilder {
	if nb, ok := b.nodes[name]; ok {
		return nb
	}
	return b.insert(name, func() (graph.Node, error) {
		id, ok := b.bindings[binding]
		if !ok {
			return nil, fmt.Errorf("binding %q: %w", binding, domain.ErrUnknownDataBinding)
		}
		return b.script.AddDataBindingNode(typeID, 0, id)
	})
}

func (b *Builder) insert(name string, create func() (graph.Node, error)) *NodeBuilder {
	nb := &NodeBuilder{name: name, builder: b}
	b.nodes[name] = nb
	if b.err != nil {
		return nb
	}
	n, err := create()
	if err != nil {
		b.err = fmt.Errorf("node %q: %w", name, err)
		return nb
	}
	nb.node = n
	return nb
}

// Node returns the node added under name, or nil.
func (b *Builder) Node(name string) graph.Node {
	if nb, ok := b.nodes[name]; ok {
		return nb.node
	}
	return nil
}

// Build resolves the recorded links and returns the script.
func (b *Builder) Build() (*graph.Script, error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, l := range b.links {
		from, to := b.Node(l.from), b.Node(l.to)
		if from == nil {
			return nil, fmt.Errorf("link from unknown node %q", l.from)
		}
		if to == nil {
			return nil, fmt.Errorf("link to unknown node %q", l.to)
		}
		if b.script.LinkPins(from.Base().Output(l.out), to.Base().Input(l.in)) == 0 {
			return nil, fmt.Errorf("link %s.%d -> %s.%d rejected", l.from, l.out, l.to, l.in)
		}
	}
	b.links = nil
	return b.script, nil
}
