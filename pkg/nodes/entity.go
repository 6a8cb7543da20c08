package nodes

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
)

// component resolves a typed component of e in the current scene.
func component[T any](x *graph.Exec, e domain.Entity, kind domain.ComponentKind) (*T, bool) {
	scene := x.Scene()
	if scene == nil || e == domain.NullEntity || !scene.Valid(e) {
		return nil, false
	}
	c, ok := scene.Component(e, kind)
	if !ok {
		return nil, false
	}
	typed, ok := c.(*T)
	return typed, ok && typed != nil
}

// PrintEntityName logs the name of the entity.
type PrintEntityName struct{ *graph.BaseNode }

func newPrintEntityName(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("Entity", domain.PinTypeEntity)
	b.AddOutput("", domain.PinTypeFlow)
	return &PrintEntityName{b}
}

func (n *PrintEntityName) OnExecute(x *graph.Exec) int8 {
	e := n.InputValue(1).AsEntity()
	if name, ok := component[domain.NameComponent](x, e, domain.ComponentName); ok {
		x.Logger().Info("entity name", "node", n.ID(), "entity", e, "name", name.Value)
	}
	return 0
}

// SetStaticMesh swaps the mesh of an entity's static mesh component.
type SetStaticMesh struct{ *graph.BaseNode }

func newSetStaticMesh(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("Entity", domain.PinTypeEntity)
	b.AddInput("Mesh", domain.PinTypeAsset)
	b.AddOutput("Success", domain.PinTypeFlow)
	b.AddOutput("Failure", domain.PinTypeFlow)
	return &SetStaticMesh{b}
}

func (n *SetStaticMesh) OnExecute(x *graph.Exec) int8 {
	mesh, ok := component[domain.StaticMeshComponent](x, n.InputValue(1).AsEntity(), domain.ComponentStaticMesh)
	if !ok {
		return 1
	}
	mesh.Mesh = n.InputValue(2).AsAsset()
	return 0
}

// TogglePointLight switches an entity's point light on or off.
type TogglePointLight struct{ *graph.BaseNode }

func newTogglePointLight(b *graph.BaseNode) graph.Node {
	b.AddInput("", domain.PinTypeFlow)
	b.AddInput("Entity", domain.PinTypeEntity)
	b.AddInput("Enabled", domain.PinTypeBool)
	b.AddOutput("Success", domain.PinTypeFlow)
	b.AddOutput("Failure", domain.PinTypeFlow)
	return &TogglePointLight{b}
}

func (n *TogglePointLight) OnExecute(x *graph.Exec) int8 {
	light, ok := component[domain.PointLightComponent](x, n.InputValue(1).AsEntity(), domain.ComponentPointLight)
	if !ok {
		return 1
	}
	light.Enabled = n.InputValue(2).AsBool()
	return 0
}
