package gltf

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports a reference whose value is not a valid offset
// into the collection it indexes. It deliberately carries no context; the
// caller supplies the field name when reporting.
var ErrIndexOutOfRange = errors.New("gltf: index out of range")

// Index is an offset into one of the document's top-level collections. The
// type parameter distinguishes, at compile time, an index into meshes from an
// index into materials; the value itself is a plain non-negative integer and
// marshals as one.
//
// An Index carries no pointer. Two Index values may alias the same target
// (for example, many nodes referencing one mesh).
type Index[T any] uint32

// indexed enumerates the entity kinds addressable through Index[T].
type indexed interface {
	Accessor | Animation | Buffer | BufferView | Camera | Image |
		Material | Mesh | Node | Sampler | Scene | Skin | Texture
}

// collection returns the document slice holding values of type T.
func collection[T indexed](doc *Document) []T {
	var probe T
	switch any(&probe).(type) {
	case *Accessor:
		return any(doc.Accessors).([]T)
	case *Animation:
		return any(doc.Animations).([]T)
	case *Buffer:
		return any(doc.Buffers).([]T)
	case *BufferView:
		return any(doc.BufferViews).([]T)
	case *Camera:
		return any(doc.Cameras).([]T)
	case *Image:
		return any(doc.Images).([]T)
	case *Material:
		return any(doc.Materials).([]T)
	case *Mesh:
		return any(doc.Meshes).([]T)
	case *Node:
		return any(doc.Nodes).([]T)
	case *Sampler:
		return any(doc.Samplers).([]T)
	case *Scene:
		return any(doc.Scenes).([]T)
	case *Skin:
		return any(doc.Skins).([]T)
	case *Texture:
		return any(doc.Textures).([]T)
	}
	panic(fmt.Sprintf("gltf: no collection for %T", probe))
}

// TryGet resolves ref against doc, returning ErrIndexOutOfRange when the
// value does not address an element of the matching collection. It never
// panics and is the form every validation check uses.
func TryGet[T indexed](doc *Document, ref Index[T]) (*T, error) {
	s := collection[T](doc)
	if int(ref) >= len(s) {
		return nil, ErrIndexOutOfRange
	}
	return &s[ref], nil
}

// Get resolves ref against doc directly.
//
// Get panics when ref is out of range. Call it only on documents that passed
// an error-free Validate, or accept fatal behavior on malformed input; TryGet
// is the checked form.
func Get[T indexed](doc *Document, ref Index[T]) *T {
	v, err := TryGet(doc, ref)
	if err != nil {
		panic(fmt.Sprintf("gltf: Get(%d): %v", ref, err))
	}
	return v
}

// resolves reports whether ref addresses an element of its collection.
func resolves[T indexed](doc *Document, ref Index[T]) bool {
	_, err := TryGet(doc, ref)
	return err == nil
}
