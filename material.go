package gltf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// AlphaMode selects how a material's alpha value is interpreted.
type AlphaMode string

const (
	AlphaOpaque AlphaMode = "OPAQUE"
	AlphaMask   AlphaMode = "MASK"
	AlphaBlend  AlphaMode = "BLEND"
)

func (m *AlphaMode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch AlphaMode(s) {
	case AlphaOpaque, AlphaMask, AlphaBlend:
		*m = AlphaMode(s)
		return nil
	}
	return fmt.Errorf("gltf: invalid alphaMode %q", s)
}

// TextureInfo is a reference to a texture plus the TEXCOORD set it samples.
// Parent structures validate the index in their own validate method.
type TextureInfo struct {
	// Texture is the referenced texture.
	Texture Index[Texture] `json:"index"`

	// TexCoord is the set index of the TEXCOORD attribute to sample.
	TexCoord uint32 `json:"texCoord,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// NormalTextureInfo is a TextureInfo with a normal-scale factor.
type NormalTextureInfo struct {
	Texture  Index[Texture] `json:"index"`
	TexCoord uint32         `json:"texCoord,omitempty"`
	Scale    float32        `json:"scale,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// OcclusionTextureInfo is a TextureInfo with an occlusion strength factor.
type OcclusionTextureInfo struct {
	Texture  Index[Texture] `json:"index"`
	TexCoord uint32         `json:"texCoord,omitempty"`
	Strength float32        `json:"strength,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// PBRMetallicRoughness is the metallic-roughness material parameter set.
type PBRMetallicRoughness struct {
	BaseColorFactor          *[4]float32  `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *TextureInfo `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float32     `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float32     `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *TextureInfo `json:"metallicRoughnessTexture,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// Material defines the appearance of a primitive.
type Material struct {
	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *NormalTextureInfo    `json:"normalTexture,omitempty"`
	OcclusionTexture     *OcclusionTextureInfo `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfo          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       *[3]float32           `json:"emissiveFactor,omitempty"`

	// AlphaMode defaults to OPAQUE when empty.
	AlphaMode   AlphaMode `json:"alphaMode,omitempty"`
	AlphaCutoff *float32  `json:"alphaCutoff,omitempty"`
	DoubleSided bool      `json:"doubleSided,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (m *Material) validate(doc *Document, _ emitFn, errf emitFn) {
	if pbr := m.PBRMetallicRoughness; pbr != nil {
		if t := pbr.BaseColorTexture; t != nil && !resolves(doc, t.Texture) {
			errf("pbrMetallicRoughness.baseColorTexture.index", CodeIndexOutOfRange, msgIndexOutOfRange)
		}
		if t := pbr.MetallicRoughnessTexture; t != nil && !resolves(doc, t.Texture) {
			errf("pbrMetallicRoughness.metallicRoughnessTexture.index", CodeIndexOutOfRange, msgIndexOutOfRange)
		}
	}
	if t := m.NormalTexture; t != nil && !resolves(doc, t.Texture) {
		errf("normalTexture.index", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
	if t := m.OcclusionTexture; t != nil && !resolves(doc, t.Texture) {
		errf("occlusionTexture.index", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
	if t := m.EmissiveTexture; t != nil && !resolves(doc, t.Texture) {
		errf("emissiveTexture.index", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
}
