package gltf

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// ParseErrorKind classifies document construction failures that happen
// before any payload I/O.
type ParseErrorKind int

const (
	// ParseMalformed covers malformed JSON, unknown fields and wrong value
	// types.
	ParseMalformed ParseErrorKind = iota
	// ParseBinaryUnsupported reports a binary (GLB) container, which this
	// package does not read.
	ParseBinaryUnsupported
	// ParseIncompatibleVersion reports an asset version outside glTF 2.x.
	ParseIncompatibleVersion
)

// ParseError is a fatal document construction failure. No partial Document
// is ever returned alongside one.
type ParseError struct {
	Kind ParseErrorKind
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gltf: %s: %v", e.Msg, e.Err)
	}
	return "gltf: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// glbMagic opens every binary glTF container.
var glbMagic = []byte("glTF")

// Parse deserializes the textual form of a document. The decode is strict:
// unknown fields at any nesting level and out-of-table enumeration values
// are rejected. Parse performs no I/O; the returned document has no payloads
// until LoadFrom.
func Parse(data []byte) (*Document, error) {
	if bytes.HasPrefix(data, glbMagic) {
		return nil, &ParseError{Kind: ParseBinaryUnsupported, Msg: "binary glTF is not supported"}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, &ParseError{Kind: ParseMalformed, Msg: "malformed document", Err: err}
	}
	if v := doc.Asset.Version; v != "" && !strings.HasPrefix(v, "2.") {
		return nil, &ParseError{
			Kind: ParseIncompatibleVersion,
			Msg:  fmt.Sprintf("incompatible asset version %q", v),
		}
	}
	if err := checkRequired(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkRequired rejects entities that omit a field the schema marks required.
// Decoding cannot tell an absent field from its zero value, so the zero
// values are rejected here, before the document can reach validation.
func checkRequired(doc *Document) *ParseError {
	for i := range doc.Accessors {
		a := &doc.Accessors[i]
		switch {
		case a.ComponentType == 0:
			return requiredErr("accessors", i, "componentType")
		case a.Type == "":
			return requiredErr("accessors", i, "type")
		case a.Count == 0:
			return requiredErr("accessors", i, "count")
		}
	}
	for i := range doc.Cameras {
		if doc.Cameras[i].Type == "" {
			return requiredErr("cameras", i, "type")
		}
	}
	return nil
}

func requiredErr(collection string, i int, field string) *ParseError {
	return &ParseError{
		Kind: ParseMalformed,
		Msg:  fmt.Sprintf("%s[%d]: missing required field %q", collection, i, field),
	}
}

// Marshal serializes the document back to its textual form. Index values are
// preserved exactly, so re-parsing yields an equal entity graph.
func Marshal(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}
