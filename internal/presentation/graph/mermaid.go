package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/hexrune/pkg/domain"
	hexgraph "github.com/aretw0/hexrune/pkg/graph"
)

// GraphOverlay contains runtime state to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []domain.NodeID
	Deferred     []domain.NodeID
}

// GenerateMermaid produces a Mermaid flowchart of a script.
// It applies semantic styling:
// - Trigger: ((Circle))
// - Data binding get/set: [/Parallelogram/]
// - Pure data node (no flow output): ([Stadium])
// - Default: [Rectangle]
// Flow links are solid arrows, data links dotted, both labelled with the
// output pin name when it has one.
func GenerateMermaid(s *hexgraph.Script, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, n := range s.Nodes() {
		b := n.Base()
		opener, closer := "[", "]"
		switch {
		case n.IsStartNode():
			opener, closer = "((", "))"
		case b.Kind().IsDataBinding():
			opener, closer = "[/", "/]"
		case !producesFlow(b):
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", mermaidID(b.ID()), opener, escape(NodeLabel(s, n)), closer)
	}

	for _, l := range s.Links() {
		start, end := s.Pin(l.Start), s.Pin(l.End)
		if start == nil || end == nil {
			continue
		}
		arrow := "-->"
		if !start.IsFlow() {
			arrow = "-.->"
		}
		if start.Name != "" {
			if start.IsFlow() {
				arrow = fmt.Sprintf("-- \"%s\" -->", escape(start.Name))
			} else {
				arrow = fmt.Sprintf("-. \"%s\" .->", escape(start.Name))
			}
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", mermaidID(start.Node()), arrow, mermaidID(end.Node()))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on light fills, regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef deferred fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.NodeID]bool)
		for _, id := range overlay.VisitedNodes {
			if !seen[id] && s.HasNode(id) {
				seen[id] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", mermaidID(id))
			}
		}
		for _, id := range overlay.Deferred {
			if s.HasNode(id) {
				fmt.Fprintf(&sb, "    class %s deferred;\n", mermaidID(id))
			}
		}
	}

	return sb.String()
}

// NodeLabel names a node for humans: its type name, or "Get X"/"Set X" for
// binding nodes.
func NodeLabel(s *hexgraph.Script, n hexgraph.Node) string {
	b := n.Base()
	if b.Kind().IsDataBinding() {
		binding, _ := s.DataBinding(b.DataBinding())
		verb := "Get"
		if b.Kind() == domain.NodeTypeDataBindingSet {
			verb = "Set"
		}
		return verb + " " + binding.Name
	}
	if name := s.Factory().TypeName(b.TypeID()); name != "" {
		return name
	}
	return fmt.Sprintf("type %d", b.TypeID())
}

func producesFlow(b *hexgraph.BaseNode) bool {
	outs := b.Outputs()
	return len(outs) > 0 && outs[0].IsFlow()
}

func mermaidID(id domain.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

// escape keeps labels from closing Mermaid's quoted strings.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
