// Package nodeutil contains small helpers for walking tree-sitter nodes
package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// NamedChildrenOf returns the named children of a node, or nil for a nil node
func NamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// FirstOfType returns the first node in a depth-first, pre-order walk of the
// subtree rooted at node whose type is one of types
func FirstOfType(node *sitter.Node, types ...string) *sitter.Node {
	if node == nil {
		return nil
	}
	for _, typ := range types {
		if node.Type() == typ {
			return node
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if found := FirstOfType(node.NamedChild(i), types...); found != nil {
			return found
		}
	}
	return nil
}

// AssertTypeIs panics if the node is nil or not of the expected type. It is
// meant for places where the grammar guarantees the shape of the tree.
func AssertTypeIs(node *sitter.Node, expectedType string) {
	if node == nil {
		panic(fmt.Errorf("expected node of type %s, got nil", expectedType))
	}
	if node.Type() != expectedType {
		panic(fmt.Errorf("expected node of type %s, got %s", expectedType, node.Type()))
	}
}
