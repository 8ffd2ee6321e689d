package gltf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// BufferTarget is the GL binding point hint of a buffer view.
type BufferTarget uint32

const (
	TargetArrayBuffer        BufferTarget = 34962
	TargetElementArrayBuffer BufferTarget = 34963
)

func (t *BufferTarget) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	switch BufferTarget(n) {
	case TargetArrayBuffer, TargetElementArrayBuffer:
		*t = BufferTarget(n)
		return nil
	}
	return fmt.Errorf("gltf: invalid buffer view target %d", n)
}

// Buffer points to binary data representing geometry, animations, or skins.
// The payload itself is read at load time; see Load.
type Buffer struct {
	// ByteLength is the declared length of the payload in bytes. The byte
	// source must return exactly this many bytes.
	ByteLength uint32 `json:"byteLength"`

	// URI locates the payload. Relative paths are relative to the document.
	URI string `json:"uri"`

	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

// BufferView is a sub-range of a buffer with an optional interleaving stride.
type BufferView struct {
	// Buffer is the parent buffer.
	Buffer Index[Buffer] `json:"buffer"`

	// ByteOffset is the offset into the parent buffer in bytes.
	ByteOffset uint32 `json:"byteOffset,omitempty"`

	// ByteLength is the length of the view in bytes.
	ByteLength uint32 `json:"byteLength"`

	// ByteStride is the distance in bytes between consecutive elements.
	// Zero means tightly packed.
	ByteStride uint32 `json:"byteStride,omitempty"`

	// Target is an optional binding point hint.
	Target BufferTarget `json:"target,omitempty"`

	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (v *BufferView) validate(doc *Document, _ emitFn, errf emitFn) {
	buffer, err := TryGet(doc, v.Buffer)
	if err != nil {
		errf("buffer", CodeIndexOutOfRange, msgIndexOutOfRange)
		return
	}
	if uint64(v.ByteOffset)+uint64(v.ByteLength) > uint64(buffer.ByteLength) {
		errf("{byte_offset, byte_length}", CodeOversizedBufferView, msgOversizedBufferView)
	}
}
