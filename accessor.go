package gltf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ComponentType is the storage type of a single accessor component, encoded
// as a GL-style small integer. The value set is closed; unrecognized values
// are a parse error.
type ComponentType uint16

const (
	ComponentI8  ComponentType = 5120
	ComponentU8  ComponentType = 5121
	ComponentI16 ComponentType = 5122
	ComponentU16 ComponentType = 5123
	ComponentU32 ComponentType = 5125
	ComponentF32 ComponentType = 5126
)

// Size returns the component width in bytes.
func (c ComponentType) Size() int {
	switch c {
	case ComponentI8, ComponentU8:
		return 1
	case ComponentI16, ComponentU16:
		return 2
	case ComponentU32, ComponentF32:
		return 4
	}
	return 0
}

func (c ComponentType) String() string {
	switch c {
	case ComponentI8:
		return "BYTE"
	case ComponentU8:
		return "UNSIGNED_BYTE"
	case ComponentI16:
		return "SHORT"
	case ComponentU16:
		return "UNSIGNED_SHORT"
	case ComponentU32:
		return "UNSIGNED_INT"
	case ComponentF32:
		return "FLOAT"
	}
	return fmt.Sprintf("ComponentType(%d)", uint16(c))
}

func (c *ComponentType) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	switch ComponentType(n) {
	case ComponentI8, ComponentU8, ComponentI16, ComponentU16, ComponentU32, ComponentF32:
		*c = ComponentType(n)
		return nil
	}
	return fmt.Errorf("gltf: invalid componentType %d", n)
}

// AccessorType is the element shape of an accessor value: a scalar or a
// fixed-arity vector or matrix.
type AccessorType string

const (
	TypeScalar AccessorType = "SCALAR"
	TypeVec2   AccessorType = "VEC2"
	TypeVec3   AccessorType = "VEC3"
	TypeVec4   AccessorType = "VEC4"
	TypeMat2   AccessorType = "MAT2"
	TypeMat3   AccessorType = "MAT3"
	TypeMat4   AccessorType = "MAT4"
)

// Arity returns the number of components per element.
func (t AccessorType) Arity() int {
	switch t {
	case TypeScalar:
		return 1
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4:
		return 4
	case TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	}
	return 0
}

func (t *AccessorType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch AccessorType(s) {
	case TypeScalar, TypeVec2, TypeVec3, TypeVec4, TypeMat2, TypeMat3, TypeMat4:
		*t = AccessorType(s)
		return nil
	}
	return fmt.Errorf("gltf: invalid accessor type %q", s)
}

// Accessor describes how to reinterpret a region of a buffer view as a
// sequence of typed elements.
type Accessor struct {
	// BufferView is the view holding the accessor's bytes.
	BufferView Index[BufferView] `json:"bufferView"`

	// ByteOffset is the offset into the buffer view in bytes.
	ByteOffset uint32 `json:"byteOffset,omitempty"`

	// ComponentType is the storage type of a single component.
	ComponentType ComponentType `json:"componentType"`

	// Normalized specifies whether integer values map to [0,1] or [-1,1].
	Normalized bool `json:"normalized,omitempty"`

	// Count is the exact number of elements the accessor describes.
	Count uint32 `json:"count"`

	// Type is the element shape.
	Type AccessorType `json:"type"`

	// Max and Min are the declared component-wise bounds of the data. They
	// are carried verbatim and not cross-checked against the payload.
	Max []float32 `json:"max,omitempty"`
	Min []float32 `json:"min,omitempty"`

	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// ElementSize returns the per-element byte size: component size times arity.
func (a *Accessor) ElementSize() int {
	return a.ComponentType.Size() * a.Type.Arity()
}

func (a *Accessor) validate(doc *Document, _ emitFn, errf emitFn) {
	view, err := TryGet(doc, a.BufferView)
	if err != nil {
		errf("bufferView", CodeIndexOutOfRange, msgIndexOutOfRange)
		return
	}
	if a.Count == 0 {
		return
	}
	size := uint64(a.ElementSize())
	stride := uint64(view.ByteStride)
	if stride == 0 {
		stride = size
	}
	end := uint64(a.ByteOffset) + uint64(a.Count-1)*stride + size
	if end > uint64(view.ByteLength) {
		errf("{byte_offset, count}", CodeOversizedAccessor, msgOversizedAccessor)
	}
}
