// Package fst models the feature structure tree that composition works on.
//
// A tree is made of non-terminals, which own their children, and terminals,
// which carry the raw source text of a declaration. Every node keeps a pointer
// to its parent, but that pointer is only used to walk upwards and never owns
// anything.
package fst

// Kind is the tag that classifies a node in the tree
type Kind string

const (
	KindFeature         Kind = "Feature"
	KindCompilationUnit Kind = "CompilationUnit"
	KindPackage         Kind = "PackageDeclaration"
	KindImport          Kind = "ImportDeclaration"
	KindClass           Kind = "ClassDeclaration"
	KindMethod          Kind = "MethodDecl"
	KindConstructor     Kind = "ConstructorDecl"
)

// Node is the read-only view of a tree node
type Node interface {
	// Kind is the node's type tag
	Kind() Kind
	// Name is the node's name, e.g. the simple name of a class or the file
	// name of a compilation unit
	Name() string
	// Body is the raw source text of a terminal, and empty for non-terminals
	Body() string
	// Feature is the name of the feature that contributed the node
	Feature() string
	// Parent returns the enclosing node, or nil for the root
	Parent() Node
	// Children returns the direct children in declaration order
	Children() []Node
}

// NonTerminal is an inner node of the tree
type NonTerminal struct {
	kind     Kind
	name     string
	feature  string
	parent   *NonTerminal
	children []Node
}

// NewNonTerminal creates a detached inner node
func NewNonTerminal(kind Kind, name, feature string) *NonTerminal {
	return &NonTerminal{kind: kind, name: name, feature: feature}
}

// AddChild appends a child and points its parent link back at nt. The child
// must not already be attached to another node.
func (nt *NonTerminal) AddChild(child Node) {
	switch c := child.(type) {
	case *NonTerminal:
		c.parent = nt
	case *Terminal:
		c.parent = nt
	default:
		panic("fst: unsupported child node type")
	}
	nt.children = append(nt.children, child)
}

func (nt *NonTerminal) Kind() Kind   { return nt.kind }
func (nt *NonTerminal) Name() string { return nt.name }
func (nt *NonTerminal) Body() string { return "" }

// Feature falls back to the enclosing node's feature when none was set
func (nt *NonTerminal) Feature() string {
	if nt.feature == "" && nt.parent != nil {
		return nt.parent.Feature()
	}
	return nt.feature
}

func (nt *NonTerminal) Parent() Node {
	if nt.parent == nil {
		return nil
	}
	return nt.parent
}

func (nt *NonTerminal) Children() []Node {
	return nt.children
}

// Terminal is a leaf carrying raw declaration text
type Terminal struct {
	kind    Kind
	name    string
	body    string
	feature string
	parent  *NonTerminal
}

// NewTerminal creates a detached leaf
func NewTerminal(kind Kind, name, body, feature string) *Terminal {
	return &Terminal{kind: kind, name: name, body: body, feature: feature}
}

func (t *Terminal) Kind() Kind   { return t.kind }
func (t *Terminal) Name() string { return t.name }
func (t *Terminal) Body() string { return t.body }

func (t *Terminal) Feature() string {
	if t.feature == "" && t.parent != nil {
		return t.parent.Feature()
	}
	return t.feature
}

func (t *Terminal) Parent() Node {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

func (t *Terminal) Children() []Node { return nil }

// ChildrenOfKind returns the direct children of node that have the given kind
func ChildrenOfKind(node Node, kind Kind) []Node {
	var matches []Node
	for _, child := range node.Children() {
		if child.Kind() == kind {
			matches = append(matches, child)
		}
	}
	return matches
}

// IsMethodOrConstructor reports whether node is a method or constructor declaration
func IsMethodOrConstructor(node Node) bool {
	return node != nil && (node.Kind() == KindMethod || node.Kind() == KindConstructor)
}
