package gltf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Node is an element of the scene hierarchy. It may reference a camera, a
// mesh and a skin, and carries either a matrix or TRS transform properties.
// Nodes hold no parent reference; parents are tracked transiently during
// traversal (see Document.Walk).
type Node struct {
	// Camera is the camera referenced by this node.
	Camera *Index[Camera] `json:"camera,omitempty"`

	// Children are the node's children in the hierarchy.
	Children []Index[Node] `json:"children,omitempty"`

	// Matrix is a 4x4 column-major transformation matrix. Mutually
	// exclusive with the TRS properties.
	Matrix *[16]float32 `json:"matrix,omitempty"`

	// Mesh is the mesh in this node.
	Mesh *Index[Mesh] `json:"mesh,omitempty"`

	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	// Rotation is the node's unit quaternion rotation [x, y, z, w].
	Rotation *[4]float32 `json:"rotation,omitempty"`

	// Scale is the node's non-uniform scale.
	Scale *[3]float32 `json:"scale,omitempty"`

	// Translation is the node's translation.
	Translation *[3]float32 `json:"translation,omitempty"`

	// Skin is the skin referenced by this node.
	Skin *Index[Skin] `json:"skin,omitempty"`

	// Weights are the morph target weights of the instantiated mesh.
	Weights []float32 `json:"weights,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (n *Node) validate(doc *Document, _ emitFn, errf emitFn) {
	if n.Camera != nil && !resolves(doc, *n.Camera) {
		errf("camera", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
	for i, child := range n.Children {
		if !resolves(doc, child) {
			errf(fmt.Sprintf("children[%d]", i), CodeIndexOutOfRange, msgIndexOutOfRange)
		}
	}
	if n.Mesh != nil && !resolves(doc, *n.Mesh) {
		errf("mesh", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
	if n.Skin != nil && !resolves(doc, *n.Skin) {
		errf("skin", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
}
