package gltf

import (
	"errors"

	json "github.com/goccy/go-json"
)

// ErrNotLoaded reports access to binary payloads on a document that was
// parsed without loading (see Parse vs Load).
var ErrNotLoaded = errors.New("gltf: payloads not loaded")

// Asset is the document's metadata block.
type Asset struct {
	// Copyright is a credit line for display.
	Copyright string `json:"copyright,omitempty"`

	// Generator names the tool that produced the document.
	Generator string `json:"generator,omitempty"`

	// Version is the glTF version this document targets.
	Version string `json:"version"`

	// MinVersion is the minimum version a consumer must support.
	MinVersion string `json:"minVersion,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// imagePayload is the resolved bytes of one image: either an owned blob read
// from the image's URI, or a window of a buffer view.
type imagePayload struct {
	owned []byte
	// view is the buffer-view index when owned is nil.
	view     Index[BufferView]
	fromView bool
}

// Document is the root object of a glTF asset. It owns every top-level
// collection plus, after Load, the pre-loaded binary payloads. A Document is
// immutable once constructed; sharing read access across goroutines needs no
// synchronization.
type Document struct {
	Accessors   []Accessor   `json:"accessors,omitempty"`
	Animations  []Animation  `json:"animations,omitempty"`
	Asset       Asset        `json:"asset"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`

	// Scene is the default scene. Absent in the source it defaults to 0,
	// and is validated unconditionally.
	Scene Index[Scene] `json:"scene"`

	ExtensionsUsed     []string `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string `json:"extensionsRequired,omitempty"`

	Cameras   []Camera   `json:"cameras,omitempty"`
	Images    []Image    `json:"images,omitempty"`
	Materials []Material `json:"materials,omitempty"`
	Meshes    []Mesh     `json:"meshes,omitempty"`
	Nodes     []Node     `json:"nodes,omitempty"`
	Samplers  []Sampler  `json:"samplers,omitempty"`
	Scenes    []Scene    `json:"scenes,omitempty"`
	Skins     []Skin     `json:"skins,omitempty"`
	Textures  []Texture  `json:"textures,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`

	// bufferData holds one pre-loaded, alignment-padded payload per buffer.
	bufferData [][]byte
	// imageData holds one resolved payload per image.
	imageData []imagePayload
}

// BufferBytes returns the pre-loaded payload of the referenced buffer. It
// fails with ErrIndexOutOfRange for a dangling reference and ErrNotLoaded
// before Load.
func (doc *Document) BufferBytes(ref Index[Buffer]) ([]byte, error) {
	if _, err := TryGet(doc, ref); err != nil {
		return nil, err
	}
	if doc.bufferData == nil {
		return nil, ErrNotLoaded
	}
	return doc.bufferData[ref], nil
}

// ImageBytes returns the resolved bytes of the referenced image: the owned
// blob for URI images, or the buffer-view window for embedded ones.
func (doc *Document) ImageBytes(ref Index[Image]) ([]byte, error) {
	if _, err := TryGet(doc, ref); err != nil {
		return nil, err
	}
	if doc.imageData == nil {
		return nil, ErrNotLoaded
	}
	p := doc.imageData[ref]
	if !p.fromView {
		return p.owned, nil
	}
	view, err := TryGet(doc, p.view)
	if err != nil {
		return nil, err
	}
	data, err := doc.BufferBytes(view.Buffer)
	if err != nil {
		return nil, err
	}
	begin := int(view.ByteOffset)
	end := begin + int(view.ByteLength)
	if end > len(data) {
		return nil, ErrIndexOutOfRange
	}
	return data[begin:end], nil
}

// Loaded reports whether binary payloads have been pre-loaded.
func (doc *Document) Loaded() bool { return doc.bufferData != nil }

// Validate walks every top-level collection in document order and reports
// the complete defect list in one pass. It never aborts: every malformation
// becomes a diagnostic. Warnings are advisory; a non-empty error list means
// the document must not be used for unchecked access or typed binary reads.
//
// Running Validate twice on the same document yields identical lists.
func (doc *Document) Validate() (warnings, errs Diagnostics) {
	warn := func(source, code, description string) {
		warnings = append(warnings, Diagnostic{Path: source, Code: code, Message: description})
	}
	fail := func(source, code, description string) {
		errs = append(errs, Diagnostic{Path: source, Code: code, Message: description})
	}

	for i := range doc.Accessors {
		doc.Accessors[i].validate(doc, at(warn, "accessors[%d]", i), at(fail, "accessors[%d]", i))
	}
	for i := range doc.Animations {
		doc.Animations[i].validate(doc, at(warn, "animations[%d]", i), at(fail, "animations[%d]", i))
	}
	for i := range doc.BufferViews {
		doc.BufferViews[i].validate(doc, at(warn, "bufferViews[%d]", i), at(fail, "bufferViews[%d]", i))
	}
	for i := range doc.Cameras {
		doc.Cameras[i].validate(doc, at(warn, "cameras[%d]", i), at(fail, "cameras[%d]", i))
	}
	for i := range doc.Images {
		doc.Images[i].validate(doc, at(warn, "images[%d]", i), at(fail, "images[%d]", i))
	}
	for i := range doc.Materials {
		doc.Materials[i].validate(doc, at(warn, "materials[%d]", i), at(fail, "materials[%d]", i))
	}
	for i := range doc.Meshes {
		doc.Meshes[i].validate(doc, at(warn, "meshes[%d]", i), at(fail, "meshes[%d]", i))
	}
	for i := range doc.Nodes {
		doc.Nodes[i].validate(doc, at(warn, "nodes[%d]", i), at(fail, "nodes[%d]", i))
	}
	for i := range doc.Scenes {
		doc.Scenes[i].validate(doc, at(warn, "scenes[%d]", i), at(fail, "scenes[%d]", i))
	}
	for i := range doc.Skins {
		doc.Skins[i].validate(doc, at(warn, "skins[%d]", i), at(fail, "skins[%d]", i))
	}
	if !resolves(doc, doc.Scene) {
		fail("scene", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
	for i := range doc.Textures {
		doc.Textures[i].validate(doc, at(warn, "textures[%d]", i), at(fail, "textures[%d]", i))
	}
	return warnings, errs
}
