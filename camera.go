package gltf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// CameraType tags which projection sub-block a camera carries.
type CameraType string

const (
	CameraOrthographic CameraType = "orthographic"
	CameraPerspective  CameraType = "perspective"
)

func (t *CameraType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch CameraType(s) {
	case CameraOrthographic, CameraPerspective:
		*t = CameraType(s)
		return nil
	}
	return fmt.Errorf("gltf: invalid camera type %q", s)
}

// Orthographic holds the properties of an orthographic projection.
type Orthographic struct {
	XMag  float32 `json:"xmag"`
	YMag  float32 `json:"ymag"`
	ZFar  float32 `json:"zfar"`
	ZNear float32 `json:"znear"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// Perspective holds the properties of a perspective projection.
type Perspective struct {
	AspectRatio float32 `json:"aspectRatio,omitempty"`
	YFov        float32 `json:"yfov"`
	ZFar        float32 `json:"zfar,omitempty"`
	ZNear       float32 `json:"znear"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// Camera is a projection a node can reference to place it in the scene.
// Exactly one of the two sub-blocks should be present, matching Type.
type Camera struct {
	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	// Orthographic is present when Type is "orthographic".
	Orthographic *Orthographic `json:"orthographic,omitempty"`

	// Perspective is present when Type is "perspective".
	Perspective *Perspective `json:"perspective,omitempty"`

	// Type selects the projection kind.
	Type CameraType `json:"type"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (c *Camera) validate(_ *Document, warn emitFn, errf emitFn) {
	switch c.Type {
	case CameraOrthographic:
		if c.Orthographic == nil {
			errf("orthographic", CodeMissingData, msgMissingData)
		}
		if c.Perspective != nil {
			warn("perspective", CodeRedundantData, msgRedundantData)
		}
	case CameraPerspective:
		if c.Perspective == nil {
			errf("perspective", CodeMissingData, msgMissingData)
		}
		if c.Orthographic != nil {
			warn("orthographic", CodeRedundantData, msgRedundantData)
		}
	}
}
