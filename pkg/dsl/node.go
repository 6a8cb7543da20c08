package dsl

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
)

// NodeBuilder provides a fluent API for configuring a node.
// When the node could not be created its methods are no-ops; the error
// surfaces from Builder.Build.
type NodeBuilder struct {
	name    string
	node    graph.Node
	builder *Builder
}

// At places the node in the editor.
func (n *NodeBuilder) At(x, y float32) *NodeBuilder {
	if n.node != nil {
		n.builder.script.SetNodePosition(n.node.Base().ID(), x, y)
	}
	return n
}

// Go links flow output out to the flow input of target.
func (n *NodeBuilder) Go(out int, target string) *NodeBuilder {
	return n.Feed(out, target, 0)
}

// Feed links output out to input in of target. It serves both data and flow
// pins; the link is validated when the script is built.
func (n *NodeBuilder) Feed(out int, target string, in int) *NodeBuilder {
	n.builder.links = append(n.builder.links, pendingLink{from: n.name, out: out, to: target, in: in})
	return n
}

// Literal writes v onto unlinked input in. Literal values are not persisted.
func (n *NodeBuilder) Literal(in int, v domain.Value) *NodeBuilder {
	if n.node != nil {
		if p := n.node.Base().Input(in); p != nil {
			n.builder.script.SetDataOnInput(p.ID(), v)
		}
	}
	return n
}

// Build returns the underlying node, nil if it could not be created.
func (n *NodeBuilder) Build() graph.Node {
	return n.node
}
