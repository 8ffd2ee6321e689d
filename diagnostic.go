package gltf

import (
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeIndexOutOfRange      = "index_out_of_range"
	CodeOversizedBufferView  = "oversized_buffer_view"
	CodeOversizedAccessor    = "oversized_accessor"
	CodeMissingData          = "missing_data"
	CodeRedundantData        = "redundant_data"
	CodeInvalidAccessor      = "invalid_accessor"
	CodeInvalidSemantic      = "invalid_semantic"
	CodeUnrecognizedSemantic = "unrecognized_semantic"
)

// Descriptions shared between validation call sites. The strings are part of
// the diagnostic contract and must not drift between entity kinds.
const (
	msgIndexOutOfRange     = "Index out of range"
	msgOversizedBufferView = "Oversized buffer view"
	msgOversizedAccessor   = "Oversized accessor"
	msgMissingData         = "Missing data"
	msgRedundantData       = "Redundant data"
)

// Diagnostic is a single validation finding. Path is a breadcrumb into the
// document (for example: meshes[2].primitives[0].attributes[NORMAL]).
type Diagnostic struct {
	Path    string
	Code    string
	Message string
}

// Diagnostics is an ordered collection of findings that implements error.
type Diagnostics []Diagnostic

// Error summarizes the first few diagnostics.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(ds)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		d := ds[i]
		// e.g. Oversized buffer view at bufferViews[0].{byte_offset, byte_length}
		fmt.Fprintf(b, "%s at %s", d.Message, d.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// emitFn receives a finding scoped to the current validation path. The source
// argument is relative; prefixes are composed by string formatting at each
// nesting level, never by mutating shared state.
type emitFn func(source, code, description string)

// at returns an emitter that prefixes every source with the given breadcrumb.
func at(emit emitFn, format string, args ...any) emitFn {
	prefix := fmt.Sprintf(format, args...)
	return func(source, code, description string) {
		if source == "" {
			emit(prefix, code, description)
			return
		}
		emit(prefix+"."+source, code, description)
	}
}
