package domain

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Value is a tagged union holding exactly one payload kind, or nothing.
// Reading a payload of a different kind yields that kind's zero value.
type Value struct {
	kind PinType
	data any
}

// Unset returns the empty value.
func Unset() Value { return Value{} }

func BoolValue(b bool) Value                 { return Value{kind: PinTypeBool, data: b} }
func IntValue(i int32) Value                 { return Value{kind: PinTypeInt, data: i} }
func FloatValue(f float32) Value             { return Value{kind: PinTypeFloat, data: f} }
func StringValue(s string) Value             { return Value{kind: PinTypeString, data: s} }
func VectorValue(v math32.Vector3) Value     { return Value{kind: PinTypeVector, data: v} }
func MatrixValue(m math32.Matrix4) Value     { return Value{kind: PinTypeMatrix, data: m} }
func QuaternionValue(q math32.Quat) Value    { return Value{kind: PinTypeQuaternion, data: q} }
func EntityValue(e Entity) Value             { return Value{kind: PinTypeEntity, data: e} }
func ComponentValue(c ComponentHandle) Value { return Value{kind: PinTypeComponentPointer, data: c} }
func AssetValue(a AssetID) Value             { return Value{kind: PinTypeAsset, data: a} }

// EntityListValue copies the slice so later writes by the caller are not observed.
func EntityListValue(es []Entity) Value {
	return Value{kind: PinTypeEntityList, data: append([]Entity(nil), es...)}
}

// ComponentListValue copies the slice so later writes by the caller are not observed.
func ComponentListValue(cs []ComponentHandle) Value {
	return Value{kind: PinTypeComponentPointerList, data: append([]ComponentHandle(nil), cs...)}
}

// Zero returns the default value of t. Types without a payload
// (Unknown, Delegate, Function, Flow) yield Unset.
func Zero(t PinType) Value {
	switch t {
	case PinTypeBool:
		return BoolValue(false)
	case PinTypeInt:
		return IntValue(0)
	case PinTypeFloat:
		return FloatValue(0)
	case PinTypeString:
		return StringValue("")
	case PinTypeVector:
		return VectorValue(math32.Vector3{})
	case PinTypeMatrix:
		return MatrixValue(math32.Matrix4{})
	case PinTypeQuaternion:
		return QuaternionValue(math32.Quat{})
	case PinTypeEntity:
		return EntityValue(NullEntity)
	case PinTypeComponentPointer:
		return ComponentValue(ComponentHandle{})
	case PinTypeAsset:
		return AssetValue(0)
	case PinTypeEntityList:
		return Value{kind: PinTypeEntityList, data: []Entity(nil)}
	case PinTypeComponentPointerList:
		return Value{kind: PinTypeComponentPointerList, data: []ComponentHandle(nil)}
	}
	return Unset()
}

// Type returns the active payload kind, PinTypeUnknown when unset.
func (v Value) Type() PinType { return v.kind }

// IsUnset reports whether the value holds no payload.
func (v Value) IsUnset() bool { return v.kind == PinTypeUnknown }

func (v Value) AsBool() bool {
	b, _ := v.data.(bool)
	return b
}

func (v Value) AsInt() int32 {
	i, _ := v.data.(int32)
	return i
}

func (v Value) AsFloat() float32 {
	f, _ := v.data.(float32)
	return f
}

func (v Value) AsString() string {
	s, _ := v.data.(string)
	return s
}

func (v Value) AsVector() math32.Vector3 {
	vec, _ := v.data.(math32.Vector3)
	return vec
}

func (v Value) AsMatrix() math32.Matrix4 {
	m, _ := v.data.(math32.Matrix4)
	return m
}

func (v Value) AsQuaternion() math32.Quat {
	q, _ := v.data.(math32.Quat)
	return q
}

func (v Value) AsEntity() Entity {
	e, _ := v.data.(Entity)
	return e
}

func (v Value) AsComponent() ComponentHandle {
	c, _ := v.data.(ComponentHandle)
	return c
}

func (v Value) AsAsset() AssetID {
	a, _ := v.data.(AssetID)
	return a
}

func (v Value) AsEntityList() []Entity {
	es, _ := v.data.([]Entity)
	return es
}

func (v Value) AsComponentList() []ComponentHandle {
	cs, _ := v.data.([]ComponentHandle)
	return cs
}

func (v Value) String() string {
	if v.IsUnset() {
		return "<unset>"
	}
	return fmt.Sprintf("%s(%v)", v.kind, v.data)
}
