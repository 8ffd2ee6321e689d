package gltf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MagFilter is a magnification filter mode.
type MagFilter uint16

const (
	MagNearest MagFilter = 9728
	MagLinear  MagFilter = 9729
)

func (f *MagFilter) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	switch MagFilter(n) {
	case MagNearest, MagLinear:
		*f = MagFilter(n)
		return nil
	}
	return fmt.Errorf("gltf: invalid magFilter %d", n)
}

// MinFilter is a minification filter mode.
type MinFilter uint16

const (
	MinNearest              MinFilter = 9728
	MinLinear               MinFilter = 9729
	MinNearestMipmapNearest MinFilter = 9984
	MinLinearMipmapNearest  MinFilter = 9985
	MinNearestMipmapLinear  MinFilter = 9986
	MinLinearMipmapLinear   MinFilter = 9987
)

func (f *MinFilter) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	switch MinFilter(n) {
	case MinNearest, MinLinear, MinNearestMipmapNearest, MinLinearMipmapNearest,
		MinNearestMipmapLinear, MinLinearMipmapLinear:
		*f = MinFilter(n)
		return nil
	}
	return fmt.Errorf("gltf: invalid minFilter %d", n)
}

// WrappingMode is a texture coordinate wrapping mode.
type WrappingMode uint16

const (
	WrapClampToEdge    WrappingMode = 33071
	WrapMirroredRepeat WrappingMode = 33648
	WrapRepeat         WrappingMode = 10497
)

func (w *WrappingMode) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	switch WrappingMode(n) {
	case WrapClampToEdge, WrapMirroredRepeat, WrapRepeat:
		*w = WrappingMode(n)
		return nil
	}
	return fmt.Errorf("gltf: invalid wrapping mode %d", n)
}

// Sampler holds texture filtering and wrapping properties.
type Sampler struct {
	// MagFilter is the magnification filter; nil leaves the choice to the
	// consumer.
	MagFilter *MagFilter `json:"magFilter,omitempty"`

	// MinFilter is the minification filter; nil leaves the choice to the
	// consumer.
	MinFilter *MinFilter `json:"minFilter,omitempty"`

	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	// WrapS is the s-coordinate wrapping mode; nil means repeat.
	WrapS *WrappingMode `json:"wrapS,omitempty"`

	// WrapT is the t-coordinate wrapping mode; nil means repeat.
	WrapT *WrappingMode `json:"wrapT,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// WrapModeS returns the s wrapping mode, defaulting to repeat.
func (s *Sampler) WrapModeS() WrappingMode {
	if s.WrapS == nil {
		return WrapRepeat
	}
	return *s.WrapS
}

// WrapModeT returns the t wrapping mode, defaulting to repeat.
func (s *Sampler) WrapModeT() WrappingMode {
	if s.WrapT == nil {
		return WrapRepeat
	}
	return *s.WrapT
}

// Texture pairs an image with a sampler.
type Texture struct {
	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	// Sampler is the sampler used by this texture.
	Sampler Index[Sampler] `json:"sampler"`

	// Source is the image used by this texture.
	Source Index[Image] `json:"source"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (t *Texture) validate(doc *Document, _ emitFn, errf emitFn) {
	if !resolves(doc, t.Sampler) {
		errf("sampler", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
	if !resolves(doc, t.Source) {
		errf("source", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
}
