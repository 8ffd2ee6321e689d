package gltf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Interpolation is a keyframe interpolation algorithm.
type Interpolation string

const (
	InterpolationLinear      Interpolation = "LINEAR"
	InterpolationStep        Interpolation = "STEP"
	InterpolationCubicSpline Interpolation = "CUBICSPLINE"
)

func (i *Interpolation) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch Interpolation(s) {
	case InterpolationLinear, InterpolationStep, InterpolationCubicSpline:
		*i = Interpolation(s)
		return nil
	}
	return fmt.Errorf("gltf: invalid interpolation %q", s)
}

// TargetPath names the node property an animation channel drives.
type TargetPath string

const (
	PathTranslation TargetPath = "translation"
	PathRotation    TargetPath = "rotation"
	PathScale       TargetPath = "scale"
	PathWeights     TargetPath = "weights"
)

func (p *TargetPath) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch TargetPath(s) {
	case PathTranslation, PathRotation, PathScale, PathWeights:
		*p = TargetPath(s)
		return nil
	}
	return fmt.Errorf("gltf: invalid animation target path %q", s)
}

// AnimationSampler combines input and output accessors with an interpolation
// algorithm to define a keyframe graph, but not its target.
type AnimationSampler struct {
	// Input references the accessor of keyframe input values (e.g. time).
	Input Index[Accessor] `json:"input"`

	// Interpolation defaults to linear when empty.
	Interpolation Interpolation `json:"interpolation,omitempty"`

	// Output references the accessor of keyframe output values.
	Output Index[Accessor] `json:"output"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// ChannelTarget is the node and property an animation channel targets.
type ChannelTarget struct {
	// Node is the targeted node.
	Node Index[Node] `json:"node"`

	// Path names the TRS property or morph weights to drive.
	Path TargetPath `json:"path"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// Channel targets an animation sampler at a node property. The sampler index
// is local to the owning animation's sampler array, not a document-level
// reference.
type Channel struct {
	Sampler uint32        `json:"sampler"`
	Target  ChannelTarget `json:"target"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// Animation is a keyframe animation: channels binding samplers to targets.
type Animation struct {
	// Channels target this animation's samplers at node properties.
	// Different channels of the same animation must not share a target.
	Channels []Channel `json:"channels"`

	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	// Samplers define the keyframe graphs channels refer to by local index.
	Samplers []AnimationSampler `json:"samplers"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (a *Animation) validate(doc *Document, _ emitFn, errf emitFn) {
	for i := range a.Samplers {
		s := &a.Samplers[i]
		if !resolves(doc, s.Input) {
			errf(fmt.Sprintf("samplers[%d].input", i), CodeIndexOutOfRange, msgIndexOutOfRange)
		}
		if !resolves(doc, s.Output) {
			errf(fmt.Sprintf("samplers[%d].output", i), CodeIndexOutOfRange, msgIndexOutOfRange)
		}
	}
	for i := range a.Channels {
		c := &a.Channels[i]
		if !resolves(doc, c.Target.Node) {
			errf(fmt.Sprintf("channels[%d].target.node", i), CodeIndexOutOfRange, msgIndexOutOfRange)
		}
		if int(c.Sampler) >= len(a.Samplers) {
			errf(fmt.Sprintf("channels[%d].sampler", i), CodeIndexOutOfRange, msgIndexOutOfRange)
		}
	}
}
