package graph

import (
	"fmt"
	"strings"

	hexgraph "github.com/aretw0/hexrune/pkg/graph"
)

// GenerateMarkdown summarizes a script: data bindings, nodes with their pins,
// and links.
func GenerateMarkdown(title string, s *hexgraph.Script) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "%d nodes, %d links, %d data bindings, %d bytes serialized.\n\n",
		len(s.Nodes()), len(s.Links()), len(s.DataBindings()), s.Size())

	if bindings := s.DataBindings(); len(bindings) > 0 {
		sb.WriteString("## Data Bindings\n\n| Name | Type | Value |\n|---|---|---|\n")
		for _, b := range bindings {
			fmt.Fprintf(&sb, "| %s | %s | `%s` |\n", b.Name, b.Type, b.Value)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Nodes\n\n| Id | Node | Inputs | Outputs |\n|---|---|---|---|\n")
	for _, n := range s.Nodes() {
		b := n.Base()
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", b.ID(), NodeLabel(s, n), pinList(b.Inputs()), pinList(b.Outputs()))
	}

	if links := s.Links(); len(links) > 0 {
		sb.WriteString("\n## Links\n\n")
		for _, l := range links {
			start, end := s.Pin(l.Start), s.Pin(l.End)
			if start == nil || end == nil {
				continue
			}
			fmt.Fprintf(&sb, "- %d.%s → %d.%s\n", start.Node(), pinName(start), end.Node(), pinName(end))
		}
	}
	return sb.String()
}

func pinList(pins []*hexgraph.Pin) string {
	names := make([]string, len(pins))
	for i, p := range pins {
		names[i] = fmt.Sprintf("%s `%s`", pinName(p), p.Type)
	}
	return strings.Join(names, ", ")
}

func pinName(p *hexgraph.Pin) string {
	if p.Name == "" {
		return "exec"
	}
	return p.Name
}
