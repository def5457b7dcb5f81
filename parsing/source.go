// Package parsing loads the Java sources of a feature into feature structure
// tree compilation units.
package parsing

import (
	"context"
	"fmt"

	"github.com/NickyBoy89/methodmap/fst"
	"github.com/NickyBoy89/methodmap/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// SourceFile is a single Java file contributed by a feature
type SourceFile struct {
	// The path of the file, relative to its feature's directory
	Name string
	// The feature the file belongs to
	Feature string
	Source  []byte
	Ast     *sitter.Node

	tree *sitter.Tree
}

// ParseAST parses the file's source, and sets its Ast
func (file *SourceFile) ParseAST() error {
	return file.ParseASTCtx(context.Background())
}

// ParseASTCtx is ParseAST with a context that can cancel the parse
func (file *SourceFile) ParseASTCtx(ctx context.Context) error {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, file.Source)
	if err != nil {
		return fmt.Errorf("parse %s: %w", file.Name, err)
	}
	file.tree = tree
	file.Ast = tree.RootNode()

	if file.Ast.HasError() {
		log.WithFields(log.Fields{
			"file":    file.Name,
			"feature": file.Feature,
		}).Warn("Source contains syntax errors, declarations may be missing")
	}
	return nil
}

// Close releases the parsed tree. The units built from the file stay valid.
func (file *SourceFile) Close() {
	if file.tree != nil {
		file.tree.Close()
		file.tree = nil
		file.Ast = nil
	}
}

// BuildUnit converts the parsed file into a compilation unit holding its
// package and import declarations and its type declarations. Every method and
// constructor becomes a terminal whose body is the full text of its
// declaration.
//
// ParseAST must have been called first.
func (file *SourceFile) BuildUnit() *fst.NonTerminal {
	if file.Ast == nil {
		panic(fmt.Sprintf("tried to build the unit of %s before parsing it", file.Name))
	}

	unit := fst.NewNonTerminal(fst.KindCompilationUnit, file.Name, file.Feature)
	for _, node := range nodeutil.NamedChildrenOf(file.Ast) {
		switch node.Type() {
		case "package_declaration":
			unit.AddChild(fst.NewTerminal(fst.KindPackage, "package", node.Content(file.Source), ""))
		case "import_declaration":
			unit.AddChild(fst.NewTerminal(fst.KindImport, "import", node.Content(file.Source), ""))
		default:
			if isTypeDeclaration(node) {
				unit.AddChild(file.buildClass(node))
			}
		}
	}
	return unit
}

func isTypeDeclaration(node *sitter.Node) bool {
	switch node.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		return true
	}
	return false
}

func (file *SourceFile) buildClass(decl *sitter.Node) *fst.NonTerminal {
	nodeutil.AssertTypeIs(decl.ChildByFieldName("name"), "identifier")
	class := fst.NewNonTerminal(fst.KindClass, decl.ChildByFieldName("name").Content(file.Source), "")

	body := decl.ChildByFieldName("body")
	if body == nil {
		return class
	}

	for _, member := range nodeutil.NamedChildrenOf(body) {
		if member.Type() == "enum_body_declarations" {
			// Methods of an enum follow its constants
			for _, inner := range nodeutil.NamedChildrenOf(member) {
				file.addMember(class, inner)
			}
			continue
		}
		file.addMember(class, member)
	}
	return class
}

func (file *SourceFile) addMember(class *fst.NonTerminal, member *sitter.Node) {
	switch member.Type() {
	case "method_declaration":
		name := member.ChildByFieldName("name").Content(file.Source)
		class.AddChild(fst.NewTerminal(fst.KindMethod, name, member.Content(file.Source), ""))
	case "constructor_declaration":
		class.AddChild(fst.NewTerminal(fst.KindConstructor, class.Name(), member.Content(file.Source), ""))
	case "compact_constructor_declaration":
		log.WithFields(log.Fields{
			"class": class.Name(),
			"file":  file.Name,
		}).Debug("Skipping compact record constructor")
	default:
		if isTypeDeclaration(member) {
			class.AddChild(file.buildClass(member))
		}
	}
}
