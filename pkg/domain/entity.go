package domain

// Entity is an opaque handle to a host ECS entity.
type Entity uint64

// NullEntity never refers to a live entity.
const NullEntity Entity = 0

// ComponentKind names a component type the host scene can resolve.
type ComponentKind uint8

const (
	ComponentName ComponentKind = iota + 1
	ComponentStaticMesh
	ComponentPointLight
)

func (k ComponentKind) String() string {
	switch k {
	case ComponentName:
		return "Name"
	case ComponentStaticMesh:
		return "StaticMesh"
	case ComponentPointLight:
		return "PointLight"
	}
	return "Unknown"
}

// ComponentHandle points at one component of one entity.
type ComponentHandle struct {
	Entity Entity
	Kind   ComponentKind
}

// NameComponent holds the display name of an entity.
type NameComponent struct {
	Value string
}

// StaticMeshComponent renders a mesh asset.
type StaticMeshComponent struct {
	Mesh AssetID
}

// PointLightComponent is an omnidirectional light.
type PointLightComponent struct {
	Enabled   bool
	Intensity float32
}
