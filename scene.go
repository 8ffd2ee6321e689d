package gltf

import (
	"fmt"
	"iter"

	json "github.com/goccy/go-json"
)

// Scene names the root nodes of one presentable node hierarchy.
type Scene struct {
	// Name is an optional user-defined label.
	Name string `json:"name,omitempty"`

	// Nodes are the scene's root nodes.
	Nodes []Index[Node] `json:"nodes,omitempty"`

	Extensions json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage `json:"extras,omitempty"`
}

func (s *Scene) validate(doc *Document, _ emitFn, errf emitFn) {
	for i, node := range s.Nodes {
		if !resolves(doc, node) {
			errf(fmt.Sprintf("nodes[%d]", i), CodeIndexOutOfRange, msgIndexOutOfRange)
		}
	}
}

// Roots iterates the root nodes of a scene. Call only on validated
// documents; unresolved references panic.
func (doc *Document) Roots(s *Scene) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, ref := range s.Nodes {
			if !yield(Get(doc, ref)) {
				return
			}
		}
	}
}

// ChildrenOf iterates the direct children of a node. Call only on validated
// documents; unresolved references panic.
func (doc *Document) ChildrenOf(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, ref := range n.Children {
			if !yield(Get(doc, ref)) {
				return
			}
		}
	}
}

// Walk visits every node reachable from the scene's roots, depth first,
// passing each node together with its parent (nil for roots). The parent is
// carried on the traversal stack, not stored on the node, since a node may
// appear under multiple parents. Returning false from visit stops the walk.
func (doc *Document) Walk(s *Scene, visit func(n, parent *Node) bool) {
	type frame struct {
		node   *Node
		parent *Node
	}
	var stack []frame
	for i := len(s.Nodes) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: Get(doc, s.Nodes[i])})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(f.node, f.parent) {
			return
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: Get(doc, f.node.Children[i]), parent: f.node})
		}
	}
}
