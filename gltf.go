// Package gltf provides:
//
// - A typed, read-only document model for glTF 2.0 assets (Parse/Load/Import)
// - Two-tier index resolution via Get/TryGet over phantom-typed Index[T] handles
// - A stable diagnostic model via Diagnostics (source path, code, message)
// - Exhaustive, non-aborting structural validation of every cross-reference
//
// Design policy:
// - Keep only public APIs in the root package; typed binary reading lives in reader/.
// - Parsing never performs I/O; loading pre-loads every payload eagerly so that
//   later reads are pure memory operations.
// - Validation collects the complete defect list in one pass; callers decide
//   whether warnings are acceptable, while any error makes the document
//   unusable for unchecked access.
//
// Typical usage:
//
//	doc, warnings, err := gltf.Import("model.gltf")
//	pos, err := reader.Positions(doc, prim.Attributes["POSITION"])
//	for p := range pos.All() { ... }
package gltf
