package symbol

import (
	"strings"

	"github.com/NickyBoy89/methodmap/fst"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// ImportTable maps the simple name of an imported type to its fully-qualified
// name, formatted as map[ImportedType: full.package.path.ImportedType]
type ImportTable map[string]string

// Merge copies every entry of other into it. Entries of other win when both
// tables import the same simple name.
func (it ImportTable) Merge(other ImportTable) {
	maps.Copy(it, other)
}

// FileScope represents the package and import information of a single
// compilation unit
type FileScope struct {
	// The file name of the compilation unit
	Name string
	// The feature that contributed the compilation unit
	Feature string
	// The package that the file is located in, empty for the default package
	Package string
	// Every type that is imported into the file
	Imports ImportTable
}

// NewFileScope collects the package and import declarations of a compilation
// unit. A nil unit yields an empty scope in the default package.
func NewFileScope(unit fst.Node) *FileScope {
	if unit == nil {
		return &FileScope{Imports: ImportTable{}}
	}
	return &FileScope{
		Name:    unit.Name(),
		Feature: unit.Feature(),
		Package: PackageOf(unit),
		Imports: ImportsOf(unit),
	}
}

// CompilationUnitOf walks up from node, including node itself, until it finds
// a compilation unit. It returns nil if the root is reached first.
func CompilationUnitOf(node fst.Node) fst.Node {
	for current := node; current != nil; current = current.Parent() {
		if current.Kind() == fst.KindCompilationUnit {
			return current
		}
	}
	return nil
}

// PackageOf returns the package declared directly inside a compilation unit,
// or an empty string if it has none
func PackageOf(unit fst.Node) string {
	if unit == nil {
		return ""
	}
	for _, child := range unit.Children() {
		if child.Kind() == fst.KindPackage {
			return stripDeclaration(child.Body(), "package")
		}
	}
	return ""
}

// ImportsOf builds the import table of a compilation unit from its direct
// import declarations.
//
// Wildcard imports, static or not, cannot be resolved without a classpath, so
// they only produce a warning. Other static imports bring members into scope,
// not types, and are skipped.
func ImportsOf(unit fst.Node) ImportTable {
	imports := ImportTable{}
	if unit == nil {
		return imports
	}

	for _, child := range unit.Children() {
		if child.Kind() != fst.KindImport {
			continue
		}

		importPath := stripDeclaration(child.Body(), "import")

		switch {
		case strings.HasSuffix(importPath, "*"):
			log.WithFields(log.Fields{
				"import":  importPath,
				"unit":    unit.Name(),
				"feature": unit.Feature(),
			}).Warn("Found unqualified import, cannot resolve types from this package")
		case strings.HasPrefix(importPath, "static "):
			log.WithField("import", importPath).Debug("Skipping static import")
		case !strings.Contains(importPath, "."):
			imports[importPath] = importPath
		default:
			simpleName := importPath[strings.LastIndex(importPath, ".")+1:]
			imports[simpleName] = importPath
		}
	}

	return imports
}

// stripDeclaration removes the leading keyword and the trailing semicolon of
// a package or import declaration
func stripDeclaration(body, keyword string) string {
	body = strings.TrimSpace(body)
	if rest, found := strings.CutPrefix(body, keyword); found && (rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n') {
		body = rest
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")
	return strings.TrimSpace(body)
}
