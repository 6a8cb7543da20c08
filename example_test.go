package hexrune_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/hexrune"
	"github.com/aretw0/hexrune/pkg/adapters/memory"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/nodes"
)

// ExampleEngine demonstrates building a script, saving it, and running the
// loaded copy against an in-memory scene.
func ExampleEngine() {
	ctx := context.Background()
	eng := hexrune.New()

	// BeginPlay -> SetStaticMesh(Entity <- Get "Door", Mesh = 42)
	s := eng.NewScript()
	door := s.AddDataBinding("Door", domain.PinTypeEntity, domain.ObjectTypeNone, domain.AssetTypeNone)
	begin, _ := s.AddNode(nodes.TypeBeginPlay, domain.BeginPlayNodeID)
	swap, _ := s.AddNode(nodes.TypeSetStaticMesh, 0)
	get, _ := s.AddDataBindingNode(graph.TypeDataBindingGet, 0, door)
	s.Link(begin.Base().Output(0).ID(), swap.Base().Input(0).ID())
	s.Link(get.Base().Output(0).ID(), swap.Base().Input(1).ID())
	s.SetDataOnInput(swap.Base().Input(2).ID(), domain.AssetValue(42))

	scene := memory.NewScene()
	e := scene.Spawn()
	scene.SetStaticMesh(e, 1)
	s.SetDataBindingValue(door, domain.EntityValue(e))

	if err := eng.Save(ctx, "door", s); err != nil {
		log.Fatal(err)
	}
	loaded, err := eng.Load(ctx, "door")
	if err != nil {
		log.Fatal(err)
	}
	if err := hexrune.Play(ctx, loaded, scene, hexrune.PlayOptions{}); err != nil {
		log.Fatal(err)
	}

	mesh, _ := scene.Component(e, domain.ComponentStaticMesh)
	fmt.Println(mesh.(*domain.StaticMeshComponent).Mesh)
	// Output: 42
}
