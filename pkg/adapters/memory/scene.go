package memory

import (
	"sync"

	"github.com/aretw0/hexrune/pkg/domain"
)

// Scene is a map-backed ports.Scene for tests and the CLI runner.
// Components are stored by pointer, so nodes mutate them in place.
type Scene struct {
	mu         sync.RWMutex
	dt         float32
	next       domain.Entity
	entities   map[domain.Entity]bool
	components map[domain.ComponentHandle]any
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		entities:   make(map[domain.Entity]bool),
		components: make(map[domain.ComponentHandle]any),
	}
}

// SetDeltaTime sets the frame time reported to Tick nodes.
func (s *Scene) SetDeltaTime(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dt = dt
}

func (s *Scene) DeltaTime() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dt
}

// Spawn creates a live entity with no components.
func (s *Scene) Spawn() domain.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.entities[s.next] = true
	return s.next
}

// Despawn destroys the entity and its components.
func (s *Scene) Despawn(e domain.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, e)
	for h := range s.components {
		if h.Entity == e {
			delete(s.components, h)
		}
	}
}

func (s *Scene) Valid(e domain.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entities[e]
}

// SetName attaches or replaces the entity's name component.
func (s *Scene) SetName(e domain.Entity, name string) {
	s.attach(e, domain.ComponentName, &domain.NameComponent{Value: name})
}

// SetStaticMesh attaches or replaces the entity's static mesh component.
func (s *Scene) SetStaticMesh(e domain.Entity, mesh domain.AssetID) {
	s.attach(e, domain.ComponentStaticMesh, &domain.StaticMeshComponent{Mesh: mesh})
}

// SetPointLight attaches or replaces the entity's point light component.
func (s *Scene) SetPointLight(e domain.Entity, light domain.PointLightComponent) {
	s.attach(e, domain.ComponentPointLight, &light)
}

func (s *Scene) attach(e domain.Entity, kind domain.ComponentKind, c any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.entities[e] {
		return
	}
	s.components[domain.ComponentHandle{Entity: e, Kind: kind}] = c
}

func (s *Scene) Component(e domain.Entity, kind domain.ComponentKind) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.components[domain.ComponentHandle{Entity: e, Kind: kind}]
	return c, ok
}

// Entities returns the live entities in spawn order.
func (s *Scene) Entities() []domain.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Entity, 0, len(s.entities))
	for e := domain.Entity(1); e <= s.next; e++ {
		if s.entities[e] {
			out = append(out, e)
		}
	}
	return out
}
