package reader_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gltfkit/gltf"
	"github.com/gltfkit/gltf/reader"
)

func putF32(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
}

// loadedDoc wraps a single pre-loaded buffer with the given views and
// accessors.
func loadedDoc(t *testing.T, payload []byte, views []gltf.BufferView, accessors []gltf.Accessor) *gltf.Document {
	t.Helper()
	doc := &gltf.Document{
		Buffers:     []gltf.Buffer{{ByteLength: uint32(len(payload)), URI: "b.bin"}},
		BufferViews: views,
		Accessors:   accessors,
	}
	if err := gltf.LoadFrom(doc, gltf.MemSource{"b.bin": payload}); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestPositions_OffsetIntoView(t *testing.T) {
	// Three tightly packed vec3 floats starting at byte 4 of a 40-byte
	// buffer: elements sit at offsets 4, 16 and 28.
	payload := make([]byte, 40)
	want := [3][3]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for i, v := range want {
		off := 4 + 12*i
		putF32(payload, off, v[0])
		putF32(payload, off+4, v[1])
		putF32(payload, off+8, v[2])
	}
	doc := loadedDoc(t, payload,
		[]gltf.BufferView{{Buffer: 0, ByteLength: 40}},
		[]gltf.Accessor{{
			BufferView:    0,
			ByteOffset:    4,
			ComponentType: gltf.ComponentF32,
			Count:         3,
			Type:          gltf.TypeVec3,
		}})

	pos, err := reader.Positions(doc, 0)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if pos.Count() != 3 {
		t.Fatalf("Count = %d", pos.Count())
	}
	for i, w := range want {
		if got := pos.At(i); got != w {
			t.Errorf("At(%d) = %v, want %v", i, got, w)
		}
	}
	i := 0
	for v := range pos.All() {
		if v != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, v, want[i])
		}
		i++
	}
	if i != 3 {
		t.Fatalf("All yielded %d elements", i)
	}
}

func TestPositions_Interleaved(t *testing.T) {
	// Two vertices interleaved as position+normal, 24-byte stride.
	payload := make([]byte, 48)
	putF32(payload, 0, 1)
	putF32(payload, 12, 10)
	putF32(payload, 24, 2)
	putF32(payload, 36, 20)
	doc := loadedDoc(t, payload,
		[]gltf.BufferView{{Buffer: 0, ByteLength: 48, ByteStride: 24}},
		[]gltf.Accessor{
			{BufferView: 0, ComponentType: gltf.ComponentF32, Count: 2, Type: gltf.TypeVec3},
			{BufferView: 0, ByteOffset: 12, ComponentType: gltf.ComponentF32, Count: 2, Type: gltf.TypeVec3},
		})

	pos, err := reader.Positions(doc, 0)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if pos.At(0)[0] != 1 || pos.At(1)[0] != 2 {
		t.Errorf("positions = %v, %v", pos.At(0), pos.At(1))
	}
	norm, err := reader.Normals(doc, 1)
	if err != nil {
		t.Fatalf("Normals: %v", err)
	}
	if norm.At(0)[0] != 10 || norm.At(1)[0] != 20 {
		t.Errorf("normals = %v, %v", norm.At(0), norm.At(1))
	}
}

func TestPositions_WrongPair(t *testing.T) {
	doc := loadedDoc(t, make([]byte, 24),
		[]gltf.BufferView{{Buffer: 0, ByteLength: 24}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentU16,
			Count:         4,
			Type:          gltf.TypeVec3,
		}})
	if _, err := reader.Positions(doc, 0); !errors.Is(err, reader.ErrAttributeType) {
		t.Fatalf("err = %v, want ErrAttributeType", err)
	}
}

func TestSeq_ShortView(t *testing.T) {
	// Four vec3 floats need 48 bytes; the view has 40.
	doc := loadedDoc(t, make([]byte, 40),
		[]gltf.BufferView{{Buffer: 0, ByteLength: 40}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentF32,
			Count:         4,
			Type:          gltf.TypeVec3,
		}})
	if _, err := reader.Positions(doc, 0); !errors.Is(err, reader.ErrShortView) {
		t.Fatalf("err = %v, want ErrShortView", err)
	}
}

func TestSeq_DanglingAccessor(t *testing.T) {
	doc := loadedDoc(t, make([]byte, 8), nil, nil)
	if _, err := reader.Positions(doc, 5); !errors.Is(err, gltf.ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestSeq_AtPanicsOutOfRange(t *testing.T) {
	doc := loadedDoc(t, make([]byte, 12),
		[]gltf.BufferView{{Buffer: 0, ByteLength: 12}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentF32,
			Count:         1,
			Type:          gltf.TypeVec3,
		}})
	pos, err := reader.Positions(doc, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("At(1) with count 1 must panic")
		}
	}()
	pos.At(1)
}

func TestReadIndices_Widening(t *testing.T) {
	payload := make([]byte, 6)
	for i, v := range []uint16{0, 1, 513} {
		binary.LittleEndian.PutUint16(payload[2*i:], v)
	}
	doc := loadedDoc(t, payload,
		[]gltf.BufferView{{Buffer: 0, ByteLength: 6}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentU16,
			Count:         3,
			Type:          gltf.TypeScalar,
		}})

	ix, err := reader.ReadIndices(doc, 0)
	if err != nil {
		t.Fatalf("ReadIndices: %v", err)
	}
	if _, ok := ix.(reader.IndicesU16); !ok {
		t.Fatalf("variant = %T, want IndicesU16", ix)
	}
	var got []uint32
	for v := range ix.AsUint32() {
		got = append(got, v)
	}
	want := []uint32{0, 1, 513}
	if len(got) != len(want) {
		t.Fatalf("AsUint32 = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AsUint32 = %v, want %v", got, want)
		}
	}
}

func TestReadIndices_RejectsFloat(t *testing.T) {
	doc := loadedDoc(t, make([]byte, 12),
		[]gltf.BufferView{{Buffer: 0, ByteLength: 12}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentF32,
			Count:         3,
			Type:          gltf.TypeScalar,
		}})
	if _, err := reader.ReadIndices(doc, 0); !errors.Is(err, reader.ErrAttributeType) {
		t.Fatalf("err = %v, want ErrAttributeType", err)
	}
}

func TestReadColors_Dispatch(t *testing.T) {
	doc := loadedDoc(t, []byte{1, 2, 3, 4, 5, 6, 7, 8},
		[]gltf.BufferView{{Buffer: 0, ByteLength: 8}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentU8,
			Count:         2,
			Type:          gltf.TypeVec4,
		}})

	c, err := reader.ReadColors(doc, 0)
	if err != nil {
		t.Fatalf("ReadColors: %v", err)
	}
	rgba, ok := c.(reader.ColorsRGBAU8)
	if !ok {
		t.Fatalf("variant = %T, want ColorsRGBAU8", c)
	}
	if rgba.At(1) != [4]uint8{5, 6, 7, 8} {
		t.Fatalf("At(1) = %v", rgba.At(1))
	}
}

func TestPrimitiveWrapper(t *testing.T) {
	payload := make([]byte, 36)
	for i := 0; i < 9; i++ {
		putF32(payload, 4*i, float32(i))
	}
	doc := loadedDoc(t, payload,
		[]gltf.BufferView{{Buffer: 0, ByteLength: 36}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentF32,
			Count:         3,
			Type:          gltf.TypeVec3,
		}})
	doc.Meshes = []gltf.Mesh{{Primitives: []gltf.Primitive{{
		Attributes: map[string]gltf.Index[gltf.Accessor]{"POSITION": 0},
	}}}}

	p := reader.For(doc, &doc.Meshes[0].Primitives[0])
	pos, err := p.Positions()
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if pos.Count() != 3 {
		t.Fatalf("Count = %d", pos.Count())
	}
	if _, err := p.TexCoords(0); !errors.Is(err, reader.ErrNoAttribute) {
		t.Fatalf("TexCoords(0) = %v, want ErrNoAttribute", err)
	}
	if _, err := p.Indices(); !errors.Is(err, reader.ErrNoAttribute) {
		t.Fatalf("Indices on non-indexed primitive = %v, want ErrNoAttribute", err)
	}
}

func TestPositionBounds(t *testing.T) {
	payload := make([]byte, 36)
	pts := [3][3]float32{{-1, 5, 0}, {2, -3, 7}, {0, 0, -9}}
	for i, v := range pts {
		putF32(payload, 12*i, v[0])
		putF32(payload, 12*i+4, v[1])
		putF32(payload, 12*i+8, v[2])
	}
	doc := loadedDoc(t, payload,
		[]gltf.BufferView{{Buffer: 0, ByteLength: 36}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentF32,
			Count:         3,
			Type:          gltf.TypeVec3,
		}})
	pos, err := reader.Positions(doc, 0)
	if err != nil {
		t.Fatal(err)
	}

	min, max := reader.PositionBounds(pos)
	if min != [3]float32{-1, -3, -9} {
		t.Errorf("min = %v", min)
	}
	if max != [3]float32{2, 5, 7} {
		t.Errorf("max = %v", max)
	}
}

func TestInverseBindMatrices(t *testing.T) {
	payload := make([]byte, 64)
	for i := 0; i < 16; i++ {
		putF32(payload, 4*i, float32(i))
	}
	doc := loadedDoc(t, payload,
		[]gltf.BufferView{{Buffer: 0, ByteLength: 64}},
		[]gltf.Accessor{{
			BufferView:    0,
			ComponentType: gltf.ComponentF32,
			Count:         1,
			Type:          gltf.TypeMat4,
		}})

	ibm, err := reader.InverseBindMatrices(doc, 0)
	if err != nil {
		t.Fatalf("InverseBindMatrices: %v", err)
	}
	m := ibm.At(0)
	if m[0] != 0 || m[15] != 15 {
		t.Fatalf("At(0) = %v", m)
	}
}
