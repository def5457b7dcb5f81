// Package signature splits the raw text of a Java method or constructor
// declaration into its name, return type and parameter list.
package signature

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NickyBoy89/methodmap/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// ErrNoDeclaration is returned when the text holds no method or constructor
var ErrNoDeclaration = errors.New("no method or constructor declaration found")

// Header is the split form of a declaration header
type Header struct {
	// The declared name; a constructor carries its class name here
	Name string
	// The source text of the return type, empty for constructors
	ReturnType string
	// The source text of the parameter list, parentheses included
	Params string
	// Whether the declaration is a constructor
	Constructor bool
}

// The text is wrapped in a class body so that it parses as a member
const (
	wrapperPrefix = "class __MethodHeader__ {\n"
	wrapperSuffix = "\n}"
)

// TreeSitterParser parses headers with the tree-sitter Java grammar. The zero
// value is ready to use and safe for concurrent use, since every call gets its
// own parser.
type TreeSitterParser struct{}

// ParseHeader implements the header parsing contract that identifiers are
// built with
func (TreeSitterParser) ParseHeader(raw string) (Header, error) {
	return Parse(raw)
}

// Parse splits a raw declaration. Annotations, modifiers, method type
// parameters, the throws clause and the body are dropped.
func Parse(raw string) (Header, error) {
	source := []byte(wrapperPrefix + raw + wrapperSuffix)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return Header{}, fmt.Errorf("parse declaration: %w", err)
	}
	defer tree.Close()

	decl := nodeutil.FirstOfType(tree.RootNode(), "method_declaration", "constructor_declaration")
	if decl == nil {
		return Header{}, fmt.Errorf("%w in %q", ErrNoDeclaration, strings.TrimSpace(raw))
	}

	nameNode := decl.ChildByFieldName("name")
	paramsNode := decl.ChildByFieldName("parameters")
	if nameNode == nil || paramsNode == nil {
		return Header{}, fmt.Errorf("%w in %q", ErrNoDeclaration, strings.TrimSpace(raw))
	}

	header := Header{
		Name:        nameNode.Content(source),
		Params:      paramsNode.Content(source),
		Constructor: decl.Type() == "constructor_declaration",
	}

	if typeNode := decl.ChildByFieldName("type"); typeNode != nil {
		header.ReturnType = typeNode.Content(source)
		// C-style array dimensions after the parameter list, e.g. `int m()[]`
		if dims := decl.ChildByFieldName("dimensions"); dims != nil {
			header.ReturnType += strings.Join(strings.Fields(dims.Content(source)), "")
		}
	}

	return header, nil
}
