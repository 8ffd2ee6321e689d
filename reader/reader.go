// Package reader overlays the raw byte payloads of a loaded document with
// lazily-evaluated, strongly-typed sequences, without copying.
//
// Every entry point is checked: the requested element layout must match the
// accessor's declared (componentType, type) pair, and the full strided range
// must fit inside the accessor's buffer view. Decoding is explicit
// little-endian per primitive; nothing here reinterprets memory.
package reader

import (
	"encoding/binary"
	"errors"
	"iter"
	"math"

	"github.com/gltfkit/gltf"
)

var (
	// ErrElementSize reports a requested element layout whose byte size
	// differs from the accessor's component size times arity. No bytes are
	// read.
	ErrElementSize = errors.New("reader: element size mismatch")

	// ErrShortView reports an accessor whose strided range overruns its
	// buffer view window.
	ErrShortView = errors.New("reader: accessor overruns its buffer view")

	// ErrAttributeType reports an accessor whose declared pair falls
	// outside the compatibility row for the requested attribute.
	ErrAttributeType = errors.New("reader: accessor type incompatible with attribute")

	// ErrNoAttribute reports a primitive lacking the requested semantic.
	ErrNoAttribute = errors.New("reader: primitive has no such attribute")
)

// Seq is a finite, known-length, forward-only sequence of typed elements
// decoded on demand from a strided byte region. A Seq borrows the document's
// payload bytes and must not outlive the document. Re-deriving a sequence is
// pure offset arithmetic; nothing is cached.
type Seq[T any] struct {
	data   []byte
	count  int
	size   int
	stride int
	decode func([]byte) T
}

// Count reports the exact number of elements.
func (s Seq[T]) Count() int { return s.count }

// At decodes the i-th element. It panics when i is out of range, like a
// slice index.
func (s Seq[T]) At(i int) T {
	if i < 0 || i >= s.count {
		panic("reader: sequence index out of range")
	}
	off := i * s.stride
	return s.decode(s.data[off : off+s.size])
}

// All iterates the elements in order. The sequence is re-derivable: calling
// All again yields a fresh pass over the same bytes.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		off := 0
		for i := 0; i < s.count; i++ {
			if !yield(s.decode(s.data[off : off+s.size])) {
				return
			}
			off += s.stride
		}
	}
}

// seqFor resolves accessor -> buffer view -> pre-loaded bytes and verifies,
// up front, that all count elements fit inside the view window. Bounds are
// re-checked here even though validation already confirmed the view against
// its buffer; the overlay never trusts a prior pass with memory safety.
func seqFor[T any](doc *gltf.Document, ref gltf.Index[gltf.Accessor], size int, decode func([]byte) T) (Seq[T], error) {
	acc, err := gltf.TryGet(doc, ref)
	if err != nil {
		return Seq[T]{}, err
	}
	if acc.ElementSize() != size {
		return Seq[T]{}, ErrElementSize
	}
	view, err := gltf.TryGet(doc, acc.BufferView)
	if err != nil {
		return Seq[T]{}, err
	}
	data, err := doc.BufferBytes(view.Buffer)
	if err != nil {
		return Seq[T]{}, err
	}
	begin := int(view.ByteOffset)
	end := begin + int(view.ByteLength)
	if end > len(data) {
		return Seq[T]{}, ErrShortView
	}
	window := data[begin:end]

	start := int(acc.ByteOffset)
	stride := int(view.ByteStride)
	if stride == 0 {
		stride = size
	}
	count := int(acc.Count)
	if start > len(window) {
		return Seq[T]{}, ErrShortView
	}
	if count > 0 && start+(count-1)*stride+size > len(window) {
		return Seq[T]{}, ErrShortView
	}
	return Seq[T]{
		data:   window[start:],
		count:  count,
		size:   size,
		stride: stride,
		decode: decode,
	}, nil
}

// pairOf returns the accessor's declared (componentType, type) pair.
func pairOf(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (gltf.ComponentType, gltf.AccessorType, error) {
	acc, err := gltf.TryGet(doc, ref)
	if err != nil {
		return 0, "", err
	}
	return acc.ComponentType, acc.Type, nil
}

// ---- fixed-width little-endian element decoders ----

func f32(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }
func u16(b []byte) uint16  { return binary.LittleEndian.Uint16(b) }
func u32(b []byte) uint32  { return binary.LittleEndian.Uint32(b) }

func scalarU8(b []byte) uint8   { return b[0] }
func scalarU16(b []byte) uint16 { return u16(b) }
func scalarU32(b []byte) uint32 { return u32(b) }

func vec2u8(b []byte) [2]uint8 { return [2]uint8{b[0], b[1]} }
func vec3u8(b []byte) [3]uint8 { return [3]uint8{b[0], b[1], b[2]} }
func vec4u8(b []byte) [4]uint8 { return [4]uint8{b[0], b[1], b[2], b[3]} }

func vec2u16(b []byte) [2]uint16 { return [2]uint16{u16(b), u16(b[2:])} }
func vec3u16(b []byte) [3]uint16 { return [3]uint16{u16(b), u16(b[2:]), u16(b[4:])} }
func vec4u16(b []byte) [4]uint16 {
	return [4]uint16{u16(b), u16(b[2:]), u16(b[4:]), u16(b[6:])}
}

func vec2f32(b []byte) [2]float32 { return [2]float32{f32(b), f32(b[4:])} }
func vec3f32(b []byte) [3]float32 { return [3]float32{f32(b), f32(b[4:]), f32(b[8:])} }
func vec4f32(b []byte) [4]float32 {
	return [4]float32{f32(b), f32(b[4:]), f32(b[8:]), f32(b[12:])}
}

func mat4f32(b []byte) [16]float32 {
	var m [16]float32
	for i := range m {
		m[i] = f32(b[4*i:])
	}
	return m
}
