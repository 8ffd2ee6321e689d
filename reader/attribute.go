package reader

import (
	"iter"

	"github.com/gltfkit/gltf"
)

// Positions reads an accessor as XYZ vertex positions of type [3]float32.
// The accessor must declare (FLOAT, VEC3).
func Positions(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (Seq[[3]float32], error) {
	c, t, err := pairOf(doc, ref)
	if err != nil {
		return Seq[[3]float32]{}, err
	}
	if c != gltf.ComponentF32 || t != gltf.TypeVec3 {
		return Seq[[3]float32]{}, ErrAttributeType
	}
	return seqFor(doc, ref, 12, vec3f32)
}

// Normals reads an accessor as XYZ vertex normals of type [3]float32.
func Normals(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (Seq[[3]float32], error) {
	return Positions(doc, ref)
}

// Tangents reads an accessor as XYZW vertex tangents of type [4]float32,
// where w is a sign value indicating the handedness of the tangent basis.
func Tangents(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (Seq[[4]float32], error) {
	c, t, err := pairOf(doc, ref)
	if err != nil {
		return Seq[[4]float32]{}, err
	}
	if c != gltf.ComponentF32 || t != gltf.TypeVec4 {
		return Seq[[4]float32]{}, ErrAttributeType
	}
	return seqFor(doc, ref, 16, vec4f32)
}

// InverseBindMatrices reads an accessor as 4x4 column-major matrices of type
// [16]float32, as referenced by a skin.
func InverseBindMatrices(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (Seq[[16]float32], error) {
	c, t, err := pairOf(doc, ref)
	if err != nil {
		return Seq[[16]float32]{}, err
	}
	if c != gltf.ComponentF32 || t != gltf.TypeMat4 {
		return Seq[[16]float32]{}, ErrAttributeType
	}
	return seqFor(doc, ref, 64, mat4f32)
}

// Colors is vertex color data. The concrete variant follows the accessor's
// declared (componentType, type) pair.
type Colors interface{ colors() }

type (
	// ColorsRGBU8 is RGB color of type [3]uint8.
	ColorsRGBU8 struct{ Seq[[3]uint8] }
	// ColorsRGBAU8 is RGBA color of type [4]uint8.
	ColorsRGBAU8 struct{ Seq[[4]uint8] }
	// ColorsRGBU16 is RGB color of type [3]uint16.
	ColorsRGBU16 struct{ Seq[[3]uint16] }
	// ColorsRGBAU16 is RGBA color of type [4]uint16.
	ColorsRGBAU16 struct{ Seq[[4]uint16] }
	// ColorsRGBF32 is RGB color of type [3]float32.
	ColorsRGBF32 struct{ Seq[[3]float32] }
	// ColorsRGBAF32 is RGBA color of type [4]float32.
	ColorsRGBAF32 struct{ Seq[[4]float32] }
)

func (ColorsRGBU8) colors()   {}
func (ColorsRGBAU8) colors()  {}
func (ColorsRGBU16) colors()  {}
func (ColorsRGBAU16) colors() {}
func (ColorsRGBF32) colors()  {}
func (ColorsRGBAF32) colors() {}

// ReadColors reads an accessor as vertex colors, dispatching on the declared
// pair per the COLOR_n compatibility row.
func ReadColors(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (Colors, error) {
	c, t, err := pairOf(doc, ref)
	if err != nil {
		return nil, err
	}
	switch {
	case c == gltf.ComponentU8 && t == gltf.TypeVec3:
		s, err := seqFor(doc, ref, 3, vec3u8)
		return ColorsRGBU8{s}, err
	case c == gltf.ComponentU8 && t == gltf.TypeVec4:
		s, err := seqFor(doc, ref, 4, vec4u8)
		return ColorsRGBAU8{s}, err
	case c == gltf.ComponentU16 && t == gltf.TypeVec3:
		s, err := seqFor(doc, ref, 6, vec3u16)
		return ColorsRGBU16{s}, err
	case c == gltf.ComponentU16 && t == gltf.TypeVec4:
		s, err := seqFor(doc, ref, 8, vec4u16)
		return ColorsRGBAU16{s}, err
	case c == gltf.ComponentF32 && t == gltf.TypeVec3:
		s, err := seqFor(doc, ref, 12, vec3f32)
		return ColorsRGBF32{s}, err
	case c == gltf.ComponentF32 && t == gltf.TypeVec4:
		s, err := seqFor(doc, ref, 16, vec4f32)
		return ColorsRGBAF32{s}, err
	}
	return nil, ErrAttributeType
}

// TexCoords is UV texture co-ordinate data.
type TexCoords interface{ texCoords() }

type (
	// TexCoordsU8 is UV data of type [2]uint8.
	TexCoordsU8 struct{ Seq[[2]uint8] }
	// TexCoordsU16 is UV data of type [2]uint16.
	TexCoordsU16 struct{ Seq[[2]uint16] }
	// TexCoordsF32 is UV data of type [2]float32.
	TexCoordsF32 struct{ Seq[[2]float32] }
)

func (TexCoordsU8) texCoords()  {}
func (TexCoordsU16) texCoords() {}
func (TexCoordsF32) texCoords() {}

// ReadTexCoords reads an accessor as UV co-ordinates, dispatching on the
// declared pair per the TEXCOORD_n compatibility row.
func ReadTexCoords(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (TexCoords, error) {
	c, t, err := pairOf(doc, ref)
	if err != nil {
		return nil, err
	}
	if t != gltf.TypeVec2 {
		return nil, ErrAttributeType
	}
	switch c {
	case gltf.ComponentU8:
		s, err := seqFor(doc, ref, 2, vec2u8)
		return TexCoordsU8{s}, err
	case gltf.ComponentU16:
		s, err := seqFor(doc, ref, 4, vec2u16)
		return TexCoordsU16{s}, err
	case gltf.ComponentF32:
		s, err := seqFor(doc, ref, 8, vec2f32)
		return TexCoordsF32{s}, err
	}
	return nil, ErrAttributeType
}

// Joints is vertex joint data.
type Joints interface{ joints() }

type (
	// JointsU8 is joint data of type [4]uint8.
	JointsU8 struct{ Seq[[4]uint8] }
	// JointsU16 is joint data of type [4]uint16.
	JointsU16 struct{ Seq[[4]uint16] }
)

func (JointsU8) joints()  {}
func (JointsU16) joints() {}

// ReadJoints reads an accessor as vertex joints, dispatching on the declared
// pair per the JOINTS_n compatibility row.
func ReadJoints(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (Joints, error) {
	c, t, err := pairOf(doc, ref)
	if err != nil {
		return nil, err
	}
	if t != gltf.TypeVec4 {
		return nil, ErrAttributeType
	}
	switch c {
	case gltf.ComponentU8:
		s, err := seqFor(doc, ref, 4, vec4u8)
		return JointsU8{s}, err
	case gltf.ComponentU16:
		s, err := seqFor(doc, ref, 8, vec4u16)
		return JointsU16{s}, err
	}
	return nil, ErrAttributeType
}

// Weights is vertex weight data.
type Weights interface{ weights() }

type (
	// WeightsU8 is weight data of type [4]uint8.
	WeightsU8 struct{ Seq[[4]uint8] }
	// WeightsU16 is weight data of type [4]uint16.
	WeightsU16 struct{ Seq[[4]uint16] }
)

func (WeightsU8) weights()  {}
func (WeightsU16) weights() {}

// ReadWeights reads an accessor as vertex weights, dispatching on the
// declared pair per the WEIGHTS_n compatibility row.
func ReadWeights(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (Weights, error) {
	c, t, err := pairOf(doc, ref)
	if err != nil {
		return nil, err
	}
	if t != gltf.TypeVec4 {
		return nil, ErrAttributeType
	}
	switch c {
	case gltf.ComponentU8:
		s, err := seqFor(doc, ref, 4, vec4u8)
		return WeightsU8{s}, err
	case gltf.ComponentU16:
		s, err := seqFor(doc, ref, 8, vec4u16)
		return WeightsU16{s}, err
	}
	return nil, ErrAttributeType
}

// Indices is index data. AsUint32 widens any variant for uniform
// consumption.
type Indices interface {
	indices()
	Count() int
	AsUint32() iter.Seq[uint32]
}

type (
	// IndicesU8 is index data of type uint8.
	IndicesU8 struct{ Seq[uint8] }
	// IndicesU16 is index data of type uint16.
	IndicesU16 struct{ Seq[uint16] }
	// IndicesU32 is index data of type uint32.
	IndicesU32 struct{ Seq[uint32] }
)

func (IndicesU8) indices()  {}
func (IndicesU16) indices() {}
func (IndicesU32) indices() {}

func (ix IndicesU8) AsUint32() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for v := range ix.All() {
			if !yield(uint32(v)) {
				return
			}
		}
	}
}

func (ix IndicesU16) AsUint32() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for v := range ix.All() {
			if !yield(uint32(v)) {
				return
			}
		}
	}
}

func (ix IndicesU32) AsUint32() iter.Seq[uint32] { return ix.All() }

// ReadIndices reads an accessor as index data: scalar u8, u16 or u32.
func ReadIndices(doc *gltf.Document, ref gltf.Index[gltf.Accessor]) (Indices, error) {
	c, t, err := pairOf(doc, ref)
	if err != nil {
		return nil, err
	}
	if t != gltf.TypeScalar {
		return nil, ErrAttributeType
	}
	switch c {
	case gltf.ComponentU8:
		s, err := seqFor(doc, ref, 1, scalarU8)
		return IndicesU8{s}, err
	case gltf.ComponentU16:
		s, err := seqFor(doc, ref, 2, scalarU16)
		return IndicesU16{s}, err
	case gltf.ComponentU32:
		s, err := seqFor(doc, ref, 4, scalarU32)
		return IndicesU32{s}, err
	}
	return nil, ErrAttributeType
}
