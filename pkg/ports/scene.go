package ports

import "github.com/aretw0/hexrune/pkg/domain"

// Scene is the host world a script runs against during one traversal.
type Scene interface {
	// DeltaTime returns the elapsed frame time in seconds.
	DeltaTime() float32

	// Valid reports whether the entity is alive.
	Valid(e domain.Entity) bool

	// Component returns a pointer to the component of the given kind
	// (e.g. *domain.StaticMeshComponent), or false when absent.
	Component(e domain.Entity, kind domain.ComponentKind) (any, bool)
}

// IDGenerator hands out process-unique 64-bit ids.
type IDGenerator interface {
	Next() uint64
}
