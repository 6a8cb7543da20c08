// Package dto holds the wire shapes used to describe scripts to HTTP clients
// and CLI output. Ids are 64-bit and encoded as strings so JSON consumers
// without 64-bit integers keep them intact.
package dto

import (
	"strconv"

	"github.com/aretw0/hexrune/pkg/graph"
)

// Script describes a loaded script asset.
type Script struct {
	ID         string    `json:"id" yaml:"id"`
	Size       int       `json:"size" yaml:"size"`
	StartNodes []string  `json:"start_nodes" yaml:"start_nodes"`
	Nodes      []Node    `json:"nodes" yaml:"nodes"`
	Links      []Link    `json:"links" yaml:"links"`
	Bindings   []Binding `json:"bindings" yaml:"bindings"`
}

type Node struct {
	ID      string  `json:"id" yaml:"id"`
	Type    string  `json:"type" yaml:"type"`
	TypeID  uint32  `json:"type_id" yaml:"type_id"`
	Binding string  `json:"binding,omitempty" yaml:"binding,omitempty"`
	X       float32 `json:"x" yaml:"x"`
	Y       float32 `json:"y" yaml:"y"`
	Inputs  []Pin   `json:"inputs" yaml:"inputs"`
	Outputs []Pin   `json:"outputs" yaml:"outputs"`
}

type Pin struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Type   string `json:"type" yaml:"type"`
	Linked string `json:"linked,omitempty" yaml:"linked,omitempty"`
}

type Link struct {
	ID    string `json:"id" yaml:"id"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

type Binding struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// FromScript builds the description of s stored under assetID.
func FromScript(assetID string, s *graph.Script) Script {
	out := Script{
		ID:         assetID,
		Size:       s.Size(),
		StartNodes: []string{},
		Nodes:      []Node{},
		Links:      []Link{},
		Bindings:   []Binding{},
	}
	for _, id := range s.StartNodes() {
		out.StartNodes = append(out.StartNodes, formatID(uint64(id)))
	}

	for _, n := range s.Nodes() {
		b := n.Base()
		pos, _ := s.NodePosition(b.ID())
		node := Node{
			ID:      formatID(uint64(b.ID())),
			Type:    s.Factory().TypeName(b.TypeID()),
			TypeID:  uint32(b.TypeID()),
			X:       pos.X,
			Y:       pos.Y,
			Inputs:  pins(b.Inputs()),
			Outputs: pins(b.Outputs()),
		}
		if b.Kind().IsDataBinding() {
			node.Binding = formatID(uint64(b.DataBinding()))
		}
		out.Nodes = append(out.Nodes, node)
	}

	for _, l := range s.Links() {
		out.Links = append(out.Links, Link{
			ID:    formatID(uint64(l.ID)),
			Start: formatID(uint64(l.Start)),
			End:   formatID(uint64(l.End)),
		})
	}

	for _, b := range s.DataBindings() {
		out.Bindings = append(out.Bindings, Binding{
			ID:    formatID(uint64(b.ID)),
			Name:  b.Name,
			Type:  b.Type.String(),
			Value: b.Value.String(),
		})
	}
	return out
}

func pins(ps []*graph.Pin) []Pin {
	out := make([]Pin, 0, len(ps))
	for _, p := range ps {
		pin := Pin{
			ID:   formatID(uint64(p.ID())),
			Name: p.Name,
			Type: p.Type.String(),
		}
		if p.IsLinked() {
			pin.Linked = formatID(uint64(p.LinkedPin()))
		}
		out = append(out, pin)
	}
	return out
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
