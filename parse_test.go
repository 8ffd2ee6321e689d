package gltf_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gltfkit/gltf"
)

const minimalJSON = `{
	"asset": {"version": "2.0"},
	"scene": 0,
	"scenes": [{"nodes": [0]}],
	"nodes": [{"mesh": 0}],
	"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
	"accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
	"bufferViews": [{"buffer": 0, "byteLength": 36}],
	"buffers": [{"byteLength": 36, "uri": "tri.bin"}]
}`

func parseKind(t *testing.T, err error) gltf.ParseErrorKind {
	t.Helper()
	var pe *gltf.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	return pe.Kind
}

func TestParse_Minimal(t *testing.T) {
	doc, err := gltf.Parse([]byte(minimalJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Asset.Version != "2.0" {
		t.Errorf("version = %q", doc.Asset.Version)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("unexpected mesh shape: %+v", doc.Meshes)
	}
	if ref, ok := doc.Meshes[0].Primitives[0].Attributes["POSITION"]; !ok || ref != 0 {
		t.Errorf("POSITION = %v, %v", ref, ok)
	}
	if doc.Loaded() {
		t.Errorf("parsed document must not report loaded payloads")
	}
	if _, err := doc.BufferBytes(0); !errors.Is(err, gltf.ErrNotLoaded) {
		t.Errorf("BufferBytes before load: %v, want ErrNotLoaded", err)
	}
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := gltf.Parse([]byte(`{"asset": {"version": "2.0"}, "bogus": 1}`))
	if kind := parseKind(t, err); kind != gltf.ParseMalformed {
		t.Fatalf("kind = %v, want ParseMalformed", kind)
	}

	// Unknown fields are rejected at any depth, not just the root.
	_, err = gltf.Parse([]byte(`{"asset": {"version": "2.0", "bogus": 1}}`))
	if kind := parseKind(t, err); kind != gltf.ParseMalformed {
		t.Fatalf("nested kind = %v, want ParseMalformed", kind)
	}
}

func TestParse_RejectsInvalidEnums(t *testing.T) {
	cases := []string{
		`{"asset": {"version": "2.0"}, "accessors": [{"bufferView": 0, "componentType": 5124, "count": 1, "type": "VEC3"}]}`,
		`{"asset": {"version": "2.0"}, "accessors": [{"bufferView": 0, "componentType": 5126, "count": 1, "type": "VEC5"}]}`,
		`{"asset": {"version": "2.0"}, "cameras": [{"type": "fisheye"}]}`,
		`{"asset": {"version": "2.0"}, "meshes": [{"primitives": [{"attributes": {}, "mode": 7}]}]}`,
		`{"asset": {"version": "2.0"}, "samplers": [{"wrapS": 1}]}`,
	}
	for _, src := range cases {
		_, err := gltf.Parse([]byte(src))
		if err == nil {
			t.Errorf("accepted %s", src)
			continue
		}
		if kind := parseKind(t, err); kind != gltf.ParseMalformed {
			t.Errorf("kind = %v for %s", kind, src)
		}
	}
}

func TestParse_RejectsMissingRequiredFields(t *testing.T) {
	cases := []string{
		// A camera with neither a type tag nor a projection sub-block must
		// not survive to a clean Validate.
		`{"asset": {"version": "2.0"}, "scenes": [{}], "cameras": [{}]}`,
		// An accessor without componentType/type has element size zero, which
		// would let any count fit any view.
		`{"asset": {"version": "2.0"}, "scenes": [{}],
		  "buffers": [{"byteLength": 4, "uri": "b.bin"}],
		  "bufferViews": [{"buffer": 0, "byteLength": 4}],
		  "accessors": [{"bufferView": 0, "count": 1000000}]}`,
		`{"asset": {"version": "2.0"}, "accessors": [{"bufferView": 0, "componentType": 5126, "count": 1}]}`,
		`{"asset": {"version": "2.0"}, "accessors": [{"bufferView": 0, "componentType": 5126, "type": "VEC3"}]}`,
	}
	for _, src := range cases {
		_, err := gltf.Parse([]byte(src))
		if err == nil {
			t.Errorf("accepted %s", src)
			continue
		}
		if kind := parseKind(t, err); kind != gltf.ParseMalformed {
			t.Errorf("kind = %v for %s", kind, src)
		}
	}
}

func TestParse_RejectsBinaryContainer(t *testing.T) {
	glb := append([]byte("glTF"), 2, 0, 0, 0)
	_, err := gltf.Parse(glb)
	if kind := parseKind(t, err); kind != gltf.ParseBinaryUnsupported {
		t.Fatalf("kind = %v, want ParseBinaryUnsupported", kind)
	}
}

func TestParse_VersionCheck(t *testing.T) {
	_, err := gltf.Parse([]byte(`{"asset": {"version": "1.0"}}`))
	if kind := parseKind(t, err); kind != gltf.ParseIncompatibleVersion {
		t.Fatalf("kind = %v, want ParseIncompatibleVersion", kind)
	}
	if _, err := gltf.Parse([]byte(`{"asset": {"version": "2.1"}}`)); err != nil {
		t.Fatalf("2.1 must parse: %v", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	doc, err := gltf.Parse([]byte(minimalJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := gltf.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	doc2, err := gltf.Parse(out)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if !reflect.DeepEqual(doc, doc2) {
		t.Fatalf("round trip changed the document:\n%+v\n%+v", doc, doc2)
	}
}
