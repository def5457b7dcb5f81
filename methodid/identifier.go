// Package methodid computes the canonical identity of a method or constructor
// declaration in a feature structure tree, together with the feature that
// contributed it.
package methodid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NickyBoy89/methodmap/astutil"
	"github.com/NickyBoy89/methodmap/fst"
	"github.com/NickyBoy89/methodmap/signature"
	"github.com/NickyBoy89/methodmap/symbol"
	"golang.org/x/exp/slices"
)

// ErrKindMismatch is returned when the declaration text is a method but the
// node is a constructor, or the other way around
var ErrKindMismatch = errors.New("declaration text does not match the node kind")

// HeaderParser splits the raw text of a declaration into its parts
type HeaderParser interface {
	ParseHeader(raw string) (signature.Header, error)
}

// Identifier is the fully-qualified identity of a method or constructor.
//
// It holds only strings derived from the tree, and is treated as read-only
// once built. Use DeepClone to get a copy that can be changed.
type Identifier struct {
	// Whether the declaration is a constructor
	Constructor bool
	// The method's name, empty for constructors
	MethodName string
	// The simple name of the declaring class
	ClassName string
	// The package of the declaring class, empty for the default package
	ClassPackage string
	// The fully-qualified parameter types, in declaration order
	ParameterTypes []string
	// The fully-qualified return type, empty for constructors
	ReturnType string
	// The feature that contributed the declaration
	OriginFeature string
}

type options struct {
	parser HeaderParser
}

// Option configures how an Identifier is built
type Option func(*options)

// WithHeaderParser replaces the tree-sitter header parser
func WithHeaderParser(parser HeaderParser) Option {
	return func(o *options) {
		o.parser = parser
	}
}

// New builds the identifier of a method or constructor node declared in
// class.
//
// Under composition the method may come from a different file than the class
// skeleton, so the compilation units of both nodes are consulted: the package
// comes from the class's unit, or from the method's unit if the class's has
// none, and the imports of both units are merged with the method's unit
// winning.
//
// New panics if node is not a method or constructor declaration or if class
// has no name. It returns an error if the declaration text cannot be split
// into a header, or if the header disagrees with the node's kind.
func New(node, class fst.Node, opts ...Option) (*Identifier, error) {
	if !fst.IsMethodOrConstructor(node) {
		panic(fmt.Errorf("tried to build the identifier of a non-method node: %v", kindOf(node)))
	}
	if class == nil || class.Name() == "" {
		panic(fmt.Errorf("tried to build the identifier of %s without a class name", kindOf(node)))
	}

	o := options{parser: signature.TreeSitterParser{}}
	for _, opt := range opts {
		opt(&o)
	}

	header, err := o.parser.ParseHeader(node.Body())
	if err != nil {
		return nil, fmt.Errorf("parse header of %s in %s: %w", node.Name(), class.Name(), err)
	}

	constructor := node.Kind() == fst.KindConstructor
	if header.Constructor != constructor {
		return nil, fmt.Errorf("%w: %s node %s in %s", ErrKindMismatch, node.Kind(), node.Name(), class.Name())
	}

	classUnit := symbol.CompilationUnitOf(class)
	classScope := symbol.NewFileScope(classUnit)

	// Both scopes are built fresh, so the class scope's table can be extended
	pkg, imports := classScope.Package, classScope.Imports

	if methodUnit := symbol.CompilationUnitOf(node); methodUnit != nil && methodUnit != classUnit {
		methodScope := symbol.NewFileScope(methodUnit)
		if pkg == "" {
			pkg = methodScope.Package
		}
		imports.Merge(methodScope.Imports)
	}

	id := &Identifier{
		Constructor:    constructor,
		ClassName:      class.Name(),
		ClassPackage:   pkg,
		ParameterTypes: []string{},
		OriginFeature:  node.Feature(),
	}

	if !id.Constructor {
		id.MethodName = header.Name
		id.ReturnType = symbol.Resolve(cleanTypeText(header.ReturnType), pkg, imports)
	}

	if params := astutil.StripParens(header.Params); params != "" {
		for _, param := range astutil.SplitTopLevel(params) {
			id.ParameterTypes = append(id.ParameterTypes, symbol.Resolve(parameterType(param), pkg, imports))
		}
	}

	return id, nil
}

func kindOf(node fst.Node) fst.Kind {
	if node == nil {
		return "<nil>"
	}
	return node.Kind()
}

// QualifiedClassName returns the class name with its package prefix
func (id *Identifier) QualifiedClassName() string {
	if id.ClassPackage == "" {
		return id.ClassName
	}
	return id.ClassPackage + "." + id.ClassName
}

// Signature is the identity of the declaration without its origin feature.
// Two features that declare the same method have the same signature.
//
// Ex: com.acme.Foo.bar(int;java.lang.String)void
// Ex: com.acme.Foo(int)
func (id *Identifier) Signature() string {
	var b strings.Builder
	b.WriteString(id.QualifiedClassName())
	if !id.Constructor {
		b.WriteString(".")
		b.WriteString(id.MethodName)
	}
	b.WriteString("(")
	b.WriteString(strings.Join(id.ParameterTypes, ";"))
	b.WriteString(")")
	if !id.Constructor {
		b.WriteString(id.ReturnType)
	}
	return b.String()
}

// String is the canonical identity, the signature followed by `=` and the
// origin feature
func (id *Identifier) String() string {
	return id.Signature() + "=" + id.OriginFeature
}

// DeepClone returns a copy that shares no state with id
func (id *Identifier) DeepClone() *Identifier {
	clone := *id
	clone.ParameterTypes = slices.Clone(id.ParameterTypes)
	if clone.ParameterTypes == nil {
		clone.ParameterTypes = []string{}
	}
	return &clone
}
