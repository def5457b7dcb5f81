package symbol

import (
	"strings"

	"github.com/NickyBoy89/methodmap/astutil"
	log "github.com/sirupsen/logrus"
)

// Resolve turns the source text of a type into its fully-qualified form,
// given the package the text appears in and the types imported there.
//
// Arrays, generic arguments and bounds are resolved part by part. A single
// name is looked up in this order, first match wins:
//
//  1. a primitive type is returned unchanged
//  2. an imported type becomes its import path
//  3. a java.lang type gets the java.lang prefix
//  4. anything else belongs to the current package, which is prefixed unless
//     it is the default package
//
// Text that is not a well-formed type expression is resolved as one name.
func Resolve(text, pkg string, imports ImportTable) string {
	text = strings.TrimSpace(text)
	expr, err := astutil.ParseTypeExpr(text)
	if err != nil {
		log.WithFields(log.Fields{
			"type":  text,
			"error": err,
		}).Debug("Resolving malformed type text as a single name")
		return ResolveName(text, pkg, imports)
	}
	return ResolveExpr(expr, pkg, imports).String()
}

// ResolveExpr returns a copy of expr in which every type name is
// fully-qualified
func ResolveExpr(expr astutil.TypeExpr, pkg string, imports ImportTable) astutil.TypeExpr {
	switch e := expr.(type) {
	case *astutil.Array:
		return &astutil.Array{Elem: ResolveExpr(e.Elem, pkg, imports)}
	case *astutil.Generic:
		args := make([]astutil.TypeExpr, len(e.Args))
		for ind, arg := range e.Args {
			args[ind] = ResolveExpr(arg, pkg, imports)
		}
		return &astutil.Generic{Outer: ResolveExpr(e.Outer, pkg, imports), Args: args}
	case *astutil.Bounded:
		return &astutil.Bounded{
			Lhs:     ResolveExpr(e.Lhs, pkg, imports),
			Keyword: e.Keyword,
			Rhs:     ResolveExpr(e.Rhs, pkg, imports),
		}
	case *astutil.Wildcard:
		return e
	case *astutil.Simple:
		return &astutil.Simple{Name: ResolveName(e.Name, pkg, imports)}
	}
	panic("Unknown type expression to resolve")
}

// ResolveName qualifies a single type name
func ResolveName(name, pkg string, imports ImportTable) string {
	if IsPrimitive(name) {
		return name
	}
	if qualified, imported := imports[name]; imported {
		return qualified
	}
	if IsCoreLibraryType(name) {
		return CoreLibraryPackage + "." + name
	}
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
