package gltf

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// PrimitiveMode is the topology of a primitive, encoded as a GL-style small
// integer.
type PrimitiveMode uint8

const (
	ModePoints PrimitiveMode = iota
	ModeLines
	ModeLineLoop
	ModeLineStrip
	ModeTriangles
	ModeTriangleStrip
	ModeTriangleFan
)

func (m *PrimitiveMode) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if n > uint32(ModeTriangleFan) {
		return fmt.Errorf("gltf: invalid primitive mode %d", n)
	}
	*m = PrimitiveMode(n)
	return nil
}

// SemanticKind classifies a vertex attribute role.
type SemanticKind uint8

const (
	SemanticPosition SemanticKind = iota
	SemanticNormal
	SemanticTangent
	SemanticColor
	SemanticTexCoord
	SemanticJoints
	SemanticWeights
	// SemanticExtra covers user-defined attributes, which by convention are
	// underscore-prefixed.
	SemanticExtra
)

// Semantic is a parsed attribute name: a role plus, for indexed roles such as
// COLOR_n, the set index.
type Semantic struct {
	Kind SemanticKind
	Set  uint32
	// Name holds the raw attribute name for SemanticExtra.
	Name string
}

// ParseSemantic interprets an attribute map key. Anything that is not a
// recognized semantic parses as SemanticExtra carrying the raw name.
func ParseSemantic(s string) Semantic {
	switch s {
	case "POSITION":
		return Semantic{Kind: SemanticPosition}
	case "NORMAL":
		return Semantic{Kind: SemanticNormal}
	case "TANGENT":
		return Semantic{Kind: SemanticTangent}
	}
	for _, p := range [...]struct {
		prefix string
		kind   SemanticKind
	}{
		{"COLOR_", SemanticColor},
		{"TEXCOORD_", SemanticTexCoord},
		{"JOINTS_", SemanticJoints},
		{"WEIGHTS_", SemanticWeights},
	} {
		if rest, ok := strings.CutPrefix(s, p.prefix); ok {
			if set, err := strconv.ParseUint(rest, 10, 32); err == nil {
				return Semantic{Kind: p.kind, Set: uint32(set)}
			}
		}
	}
	return Semantic{Kind: SemanticExtra, Name: s}
}

// String renders the semantic as it appears in the document.
func (s Semantic) String() string {
	switch s.Kind {
	case SemanticPosition:
		return "POSITION"
	case SemanticNormal:
		return "NORMAL"
	case SemanticTangent:
		return "TANGENT"
	case SemanticColor:
		return fmt.Sprintf("COLOR_%d", s.Set)
	case SemanticTexCoord:
		return fmt.Sprintf("TEXCOORD_%d", s.Set)
	case SemanticJoints:
		return fmt.Sprintf("JOINTS_%d", s.Set)
	case SemanticWeights:
		return fmt.Sprintf("WEIGHTS_%d", s.Set)
	}
	return s.Name
}

// Compatible reports whether an accessor's (componentType, type) pair is
// acceptable for the semantic:
//
//	POSITION, NORMAL   float VEC3
//	TANGENT            float VEC4
//	COLOR_n            u8/u16/float VEC3 or VEC4
//	TEXCOORD_n         u8/u16/float VEC2
//	JOINTS_n, WEIGHTS_n u8/u16 VEC4
//
// SemanticExtra bypasses the table and is always compatible.
func (s Semantic) Compatible(c ComponentType, t AccessorType) bool {
	switch s.Kind {
	case SemanticPosition, SemanticNormal:
		return c == ComponentF32 && t == TypeVec3
	case SemanticTangent:
		return c == ComponentF32 && t == TypeVec4
	case SemanticColor:
		return (c == ComponentU8 || c == ComponentU16 || c == ComponentF32) &&
			(t == TypeVec3 || t == TypeVec4)
	case SemanticTexCoord:
		return (c == ComponentU8 || c == ComponentU16 || c == ComponentF32) &&
			t == TypeVec2
	case SemanticJoints, SemanticWeights:
		return (c == ComponentU8 || c == ComponentU16) && t == TypeVec4
	}
	return true
}

// compatibleMorph is the morph-target row of the table. Targets hold
// displacements added component-wise to the base attribute, so they follow
// the base row except TANGENT, whose displacement carries no handedness w
// and is a float VEC3.
func compatibleMorph(kind SemanticKind, c ComponentType, t AccessorType) bool {
	switch kind {
	case SemanticPosition, SemanticNormal, SemanticTangent:
		return c == ComponentF32 && t == TypeVec3
	}
	return false
}

// validIndexType reports whether the pair is acceptable for an index
// accessor: scalar u8, u16 or u32.
func validIndexType(c ComponentType, t AccessorType) bool {
	if t != TypeScalar {
		return false
	}
	return c == ComponentU8 || c == ComponentU16 || c == ComponentU32
}

// Primitive is a single draw unit of a mesh: an attribute map plus optional
// indices, material and morph targets.
type Primitive struct {
	// Attributes maps semantic names to accessors.
	Attributes map[string]Index[Accessor] `json:"attributes"`

	// Indices is the optional index accessor; when nil the primitive is
	// non-indexed.
	Indices *Index[Accessor] `json:"indices,omitempty"`

	// Material is the optional material reference.
	Material *Index[Material] `json:"material,omitempty"`

	// Mode is the topology; nil means triangles.
	Mode *PrimitiveMode `json:"mode,omitempty"`

	// Targets holds the morph target maps. Only POSITION, NORMAL and
	// TANGENT keys are allowed.
	Targets []map[string]Index[Accessor] `json:"targets,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// PrimitiveMode returns the topology, defaulting to triangles.
func (p *Primitive) PrimitiveMode() PrimitiveMode {
	if p.Mode == nil {
		return ModeTriangles
	}
	return *p.Mode
}

// Mesh is a set of primitives to be rendered. A node can reference a mesh,
// and its transform places the primitives in the scene.
type Mesh struct {
	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	// Primitives is the draw list; each entry validates independently.
	Primitives []Primitive `json:"primitives"`

	// Weights are the default morph target weights.
	Weights []float32 `json:"weights,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (m *Mesh) validate(doc *Document, warn emitFn, errf emitFn) {
	for i := range m.Primitives {
		p := &m.Primitives[i]
		p.validate(doc, at(warn, "primitives[%d]", i), at(errf, "primitives[%d]", i))
	}
}

func (p *Primitive) validate(doc *Document, warn emitFn, errf emitFn) {
	// Sorted key order keeps repeated validation runs byte-identical.
	for _, name := range slices.Sorted(maps.Keys(p.Attributes)) {
		ref := p.Attributes[name]
		sem := ParseSemantic(name)
		if sem.Kind == SemanticExtra && !strings.HasPrefix(name, "_") {
			warn(fmt.Sprintf("attributes[%s]", name), CodeUnrecognizedSemantic,
				fmt.Sprintf("Unrecognized attribute semantic %s", name))
		}
		accessor, err := TryGet(doc, ref)
		if err != nil {
			errf(fmt.Sprintf("attributes[%s]", name), CodeIndexOutOfRange, msgIndexOutOfRange)
			continue
		}
		if !sem.Compatible(accessor.ComponentType, accessor.Type) {
			errf(fmt.Sprintf("attributes[%s]", name), CodeInvalidAccessor,
				fmt.Sprintf("Invalid accessor for attribute %s", name))
		}
	}
	if p.Indices != nil {
		if accessor, err := TryGet(doc, *p.Indices); err != nil {
			errf("indices", CodeIndexOutOfRange, msgIndexOutOfRange)
		} else if !validIndexType(accessor.ComponentType, accessor.Type) {
			errf("indices", CodeInvalidAccessor, "Invalid accessor for indices")
		}
	}
	if p.Material != nil && !resolves(doc, *p.Material) {
		errf("material", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
	for i, target := range p.Targets {
		for _, name := range slices.Sorted(maps.Keys(target)) {
			ref := target[name]
			sem := ParseSemantic(name)
			if sem.Kind != SemanticPosition && sem.Kind != SemanticNormal && sem.Kind != SemanticTangent {
				errf(fmt.Sprintf("targets[%d][%s]", i, name), CodeInvalidSemantic, "Invalid attribute semantic")
				continue
			}
			accessor, err := TryGet(doc, ref)
			if err != nil {
				errf(fmt.Sprintf("targets[%d][%s]", i, name), CodeIndexOutOfRange, msgIndexOutOfRange)
				continue
			}
			if !compatibleMorph(sem.Kind, accessor.ComponentType, accessor.Type) {
				errf(fmt.Sprintf("targets[%d][%s]", i, name), CodeInvalidAccessor,
					fmt.Sprintf("Invalid accessor for attribute %s", name))
			}
		}
	}
}
