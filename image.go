package gltf

import (
	json "github.com/goccy/go-json"
)

// Image is pixel data used to create a texture. The bytes come either from a
// URI or from a window of a buffer view; exactly one of the two should be
// set.
type Image struct {
	// BufferView holds the encoded image when URI is empty.
	BufferView *Index[BufferView] `json:"bufferView,omitempty"`

	// MimeType is the image's declared MIME type.
	MimeType string `json:"mimeType,omitempty"`

	// URI locates the image when BufferView is nil. Relative paths are
	// relative to the document.
	URI string `json:"uri,omitempty"`

	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (img *Image) validate(doc *Document, _ emitFn, errf emitFn) {
	if img.BufferView != nil && !resolves(doc, *img.BufferView) {
		errf("bufferView", CodeIndexOutOfRange, msgIndexOutOfRange)
	}
}
