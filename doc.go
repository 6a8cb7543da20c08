/*
Package hexrune is an embeddable visual-scripting engine for game entities.

Designers build scripts as graphs of nodes connected through typed pins. Flow
pins carry control from node to node; data pins carry values, pulled on demand
from the node that produces them. Scripts are saved as compact binary assets
and run by the host against its ECS scene.

# Concept

A script reacts to host events through trigger nodes (BeginPlay, Tick, EndPlay,
BeginOverlap, EndOverlap). The host calls the matching entry point each frame or
event; execution is synchronous and single-threaded, and the only suspension is
a Delay, which the host resumes by advancing deferred timers.

The core lives in pkg/graph. pkg/nodes is the standard node library, and the
pkg/adapters packages provide script stores (memory, file, Redis) and scenes
(in-memory, donburi ECS).

# Usage

	eng := hexrune.New(hexrune.WithStore(file.New("./scripts")))

	s := eng.NewScript()
	begin, _ := s.AddNode(nodes.TypeBeginPlay, domain.BeginPlayNodeID)
	say, _ := s.AddNode(nodes.TypePrintString, 0)
	s.Link(begin.Base().Output(0).ID(), say.Base().Input(0).ID())
	s.SetDataOnInput(say.Base().Input(1).ID(), domain.StringValue("hello"))

	if err := eng.Save(ctx, "greeter", s); err != nil {
		log.Fatal(err)
	}
	_ = hexrune.Play(ctx, s, memory.NewScene(), hexrune.PlayOptions{Ticks: 60, DeltaTime: 1.0 / 60})

Literal pin values are authoring state and are not part of the saved asset;
values that must survive a save belong in data bindings (see pkg/dsl).
*/
package hexrune
