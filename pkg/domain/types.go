package domain

import "fmt"

// NodeID identifies a node within a script.
type NodeID uint64

// PinID identifies a pin. Pin ids are process-unique.
type PinID uint64

// LinkID identifies a link within a script.
type LinkID uint64

// BindingID identifies a data binding within a script.
type BindingID uint64

// AssetID identifies an asset known to the host asset registry.
type AssetID uint64

// TypeID is the stable, persisted identifier of a registered node class.
type TypeID uint32

// PinType is the closed set of payload kinds a pin can carry.
type PinType uint8

const (
	PinTypeUnknown PinType = iota
	PinTypeBool
	PinTypeInt
	PinTypeFloat
	PinTypeString
	PinTypeVector
	PinTypeMatrix
	PinTypeQuaternion
	PinTypeEntity
	PinTypeComponentPointer
	PinTypeAsset
	PinTypeEntityList
	PinTypeComponentPointerList
	PinTypeDelegate
	PinTypeFunction
	PinTypeFlow
)

var pinTypeNames = [...]string{
	PinTypeUnknown:              "Unknown",
	PinTypeBool:                 "Bool",
	PinTypeInt:                  "Int",
	PinTypeFloat:                "Float",
	PinTypeString:               "String",
	PinTypeVector:               "Vector",
	PinTypeMatrix:               "Matrix",
	PinTypeQuaternion:           "Quaternion",
	PinTypeEntity:               "Entity",
	PinTypeComponentPointer:     "ComponentPointer",
	PinTypeAsset:                "Asset",
	PinTypeEntityList:           "EntityList",
	PinTypeComponentPointerList: "ComponentPointerList",
	PinTypeDelegate:             "Delegate",
	PinTypeFunction:             "Function",
	PinTypeFlow:                 "Flow",
}

func (t PinType) String() string {
	if int(t) < len(pinTypeNames) {
		return pinTypeNames[t]
	}
	return fmt.Sprintf("PinType(%d)", uint8(t))
}

// IsFlow reports whether pins of this type carry control instead of data.
func (t PinType) IsFlow() bool {
	return t == PinTypeFlow
}

// Direction tells whether a pin receives or produces values.
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "out"
	}
	return "in"
}

// NodeType discriminates plain nodes from the two data-binding node variants.
// Binding variants carry the id of the data binding they target.
type NodeType uint8

const (
	NodeTypeDefault NodeType = iota
	NodeTypeDataBindingGet
	NodeTypeDataBindingSet
)

// IsDataBinding reports whether nodes of this kind reference a data binding.
func (t NodeType) IsDataBinding() bool {
	return t == NodeTypeDataBindingGet || t == NodeTypeDataBindingSet
}

// ObjectType narrows ComponentPointer bindings to a component kind.
type ObjectType uint8

const (
	ObjectTypeNone ObjectType = iota
	ObjectTypeName
	ObjectTypeStaticMesh
	ObjectTypePointLight
)

// AssetType narrows Asset bindings to an asset category.
type AssetType uint8

const (
	AssetTypeNone AssetType = iota
	AssetTypeMesh
	AssetTypeTexture
	AssetTypeMaterial
	AssetTypeSound
	AssetTypeScript
)
