package reader

import (
	"fmt"

	"github.com/gltfkit/gltf"
)

// Primitive binds a mesh primitive to its document so attribute data can be
// pulled by semantic without threading both through every call.
type Primitive struct {
	doc  *gltf.Document
	prim *gltf.Primitive
}

// For wraps a primitive of a loaded document.
func For(doc *gltf.Document, p *gltf.Primitive) Primitive {
	return Primitive{doc: doc, prim: p}
}

func (p Primitive) attr(name string) (gltf.Index[gltf.Accessor], error) {
	ref, ok := p.prim.Attributes[name]
	if !ok {
		return 0, ErrNoAttribute
	}
	return ref, nil
}

// Positions reads the POSITION attribute.
func (p Primitive) Positions() (Seq[[3]float32], error) {
	ref, err := p.attr("POSITION")
	if err != nil {
		return Seq[[3]float32]{}, err
	}
	return Positions(p.doc, ref)
}

// Normals reads the NORMAL attribute.
func (p Primitive) Normals() (Seq[[3]float32], error) {
	ref, err := p.attr("NORMAL")
	if err != nil {
		return Seq[[3]float32]{}, err
	}
	return Normals(p.doc, ref)
}

// Tangents reads the TANGENT attribute.
func (p Primitive) Tangents() (Seq[[4]float32], error) {
	ref, err := p.attr("TANGENT")
	if err != nil {
		return Seq[[4]float32]{}, err
	}
	return Tangents(p.doc, ref)
}

// Colors reads the COLOR_set attribute.
func (p Primitive) Colors(set uint32) (Colors, error) {
	ref, err := p.attr(fmt.Sprintf("COLOR_%d", set))
	if err != nil {
		return nil, err
	}
	return ReadColors(p.doc, ref)
}

// TexCoords reads the TEXCOORD_set attribute.
func (p Primitive) TexCoords(set uint32) (TexCoords, error) {
	ref, err := p.attr(fmt.Sprintf("TEXCOORD_%d", set))
	if err != nil {
		return nil, err
	}
	return ReadTexCoords(p.doc, ref)
}

// Joints reads the JOINTS_set attribute.
func (p Primitive) Joints(set uint32) (Joints, error) {
	ref, err := p.attr(fmt.Sprintf("JOINTS_%d", set))
	if err != nil {
		return nil, err
	}
	return ReadJoints(p.doc, ref)
}

// Weights reads the WEIGHTS_set attribute.
func (p Primitive) Weights(set uint32) (Weights, error) {
	ref, err := p.attr(fmt.Sprintf("WEIGHTS_%d", set))
	if err != nil {
		return nil, err
	}
	return ReadWeights(p.doc, ref)
}

// Indices reads the index accessor. ErrNoAttribute means the primitive is
// non-indexed.
func (p Primitive) Indices() (Indices, error) {
	if p.prim.Indices == nil {
		return nil, ErrNoAttribute
	}
	return ReadIndices(p.doc, *p.prim.Indices)
}
