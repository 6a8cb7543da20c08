// Package donburi adapts a donburi ECS world to ports.Scene so scripts can
// read and mutate entity components, and routes overlap events from the
// world's event bus into a script's overlap triggers.
package donburi

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/ports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Component types scripts can resolve through the scene.
var (
	Name       = donburi.NewComponentType[domain.NameComponent]()
	StaticMesh = donburi.NewComponentType[domain.StaticMeshComponent]()
	PointLight = donburi.NewComponentType[domain.PointLightComponent]()
)

// Scene implements ports.Scene over a donburi.World.
type Scene struct {
	world donburi.World
	dt    float32
}

// NewScene wraps world.
func NewScene(world donburi.World) *Scene {
	return &Scene{world: world}
}

// World returns the wrapped world.
func (s *Scene) World() donburi.World { return s.world }

// SetDeltaTime sets the frame time reported to Tick nodes.
func (s *Scene) SetDeltaTime(dt float32) { s.dt = dt }

func (s *Scene) DeltaTime() float32 { return s.dt }

func (s *Scene) Valid(e domain.Entity) bool {
	return e != domain.NullEntity && s.world.Valid(donburi.Entity(e))
}

// Component returns a pointer into the world's storage, so writes through it
// are visible to other systems.
func (s *Scene) Component(e domain.Entity, kind domain.ComponentKind) (any, bool) {
	if !s.Valid(e) {
		return nil, false
	}
	entry := s.world.Entry(donburi.Entity(e))
	switch kind {
	case domain.ComponentName:
		if entry.HasComponent(Name) {
			return Name.Get(entry), true
		}
	case domain.ComponentStaticMesh:
		if entry.HasComponent(StaticMesh) {
			return StaticMesh.Get(entry), true
		}
	case domain.ComponentPointLight:
		if entry.HasComponent(PointLight) {
			return PointLight.Get(entry), true
		}
	}
	return nil, false
}

// Spawn creates an entity carrying a Name component.
func (s *Scene) Spawn(name string) domain.Entity {
	e := s.world.Create(Name)
	Name.SetValue(s.world.Entry(e), domain.NameComponent{Value: name})
	return Entity(e)
}

// Entity converts a world entity into a script entity handle.
func Entity(e donburi.Entity) domain.Entity { return domain.Entity(e) }

// OverlapEvent reports that two entities started or stopped overlapping.
type OverlapEvent struct {
	Triggering domain.Entity
	Other      domain.Entity
	Begin      bool
}

// OverlapEventType is the donburi event type physics systems publish overlaps on.
var OverlapEventType = events.NewEventType[OverlapEvent]()

// OverlapTarget receives overlap events; *graph.Script satisfies it.
type OverlapTarget interface {
	BeginOverlap(scene ports.Scene, triggering, other domain.Entity)
	EndOverlap(scene ports.Scene, triggering, other domain.Entity)
}

// RouteOverlaps subscribes target to the world's overlap events. Events are
// delivered when the host calls OverlapEventType.ProcessEvents(world).
func (s *Scene) RouteOverlaps(target OverlapTarget) {
	OverlapEventType.Subscribe(s.world, func(_ donburi.World, ev OverlapEvent) {
		if ev.Begin {
			target.BeginOverlap(s, ev.Triggering, ev.Other)
			return
		}
		target.EndOverlap(s, ev.Triggering, ev.Other)
	})
}

// PublishOverlap queues an overlap event on the world.
func (s *Scene) PublishOverlap(triggering, other donburi.Entity, begin bool) {
	OverlapEventType.Publish(s.world, OverlapEvent{
		Triggering: Entity(triggering),
		Other:      Entity(other),
		Begin:      begin,
	})
}
