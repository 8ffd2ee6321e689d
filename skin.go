package gltf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Skin holds the joints and inverse-bind matrices defining a skinned mesh.
type Skin struct {
	// InverseBindMatrices references the accessor holding one 4x4 matrix
	// per joint. When nil, each matrix is the identity.
	InverseBindMatrices *Index[Accessor] `json:"inverseBindMatrices,omitempty"`

	// Joints are the skeleton nodes used as joints, in joint-index order.
	Joints []Index[Node] `json:"joints"`

	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	// Skeleton is the node used as the skeleton root. When nil, joint
	// transforms resolve to the scene root.
	Skeleton *Index[Node] `json:"skeleton,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (s *Skin) validate(doc *Document, _ emitFn, errf emitFn) {
	if s.InverseBindMatrices != nil && !resolves(doc, *s.InverseBindMatrices) {
		errf("accessor", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
	for i, joint := range s.Joints {
		if !resolves(doc, joint) {
			errf(fmt.Sprintf("joints[%d]", i), CodeIndexOutOfRange, msgIndexOutOfRange)
		}
	}
	if s.Skeleton != nil && !resolves(doc, *s.Skeleton) {
		errf("skeleton", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
}
