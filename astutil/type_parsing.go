package astutil

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// TypeExpr is a parsed Java type expression. It is one of *Simple, *Wildcard,
// *Array, *Generic or *Bounded.
type TypeExpr interface {
	// String renders the expression back into Java source form
	String() string
	typeExpr()
}

// Simple is a plain or dotted type name, such as `int`, `List` or `Thread.State`
type Simple struct {
	Name string
}

// Wildcard is the `?` of a wildcard type argument
type Wildcard struct{}

// Array is an array of Elem. Varargs (`...`) parse as one array dimension.
type Array struct {
	Elem TypeExpr
}

// Generic is a parameterized type, such as `Map<K, V>`
type Generic struct {
	Outer TypeExpr
	Args  []TypeExpr
}

// Bounded is a type with an `extends`, `implements` or `super` bound, such as
// `T extends Comparable<T>`
type Bounded struct {
	Lhs     TypeExpr
	Keyword string
	Rhs     TypeExpr
}

func (*Simple) typeExpr()   {}
func (*Wildcard) typeExpr() {}
func (*Array) typeExpr()    {}
func (*Generic) typeExpr()  {}
func (*Bounded) typeExpr()  {}

func (s *Simple) String() string { return s.Name }

func (*Wildcard) String() string { return "?" }

func (a *Array) String() string { return a.Elem.String() + "[]" }

func (g *Generic) String() string {
	args := make([]string, len(g.Args))
	for ind, arg := range g.Args {
		args[ind] = arg.String()
	}
	return g.Outer.String() + "<" + strings.Join(args, ", ") + ">"
}

func (b *Bounded) String() string {
	return b.Lhs.String() + " " + b.Keyword + " " + b.Rhs.String()
}

// The grammar that a type expression is parsed with:
//
//	Type    = Element [ ("extends" | "implements" | "super") Type ]
//	Element = (Ident | "?") [ "<" [ Type { "," Type } ] ">" ] { "[" "]" | "..." }
type typeGrammar struct {
	Element *elementGrammar `parser:"@@"`
	Keyword string          `parser:"( @( 'extends' | 'implements' | 'super' )"`
	Bound   *typeGrammar    `parser:"  @@ )?"`
}

type elementGrammar struct {
	Name string         `parser:"( @Ident | @'?' )"`
	Args []*typeGrammar `parser:"( '<' ( @@ ( ',' @@ )* )? '>' )?"`
	Dims []string       `parser:"( @'[' ']' | @Ellipsis )*"`
}

var typeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "Ident", Pattern: `[\p{L}_$][\p{L}\p{N}_$]*(\.[\p{L}_$][\p{L}\p{N}_$]*)*`},
	{Name: "Punct", Pattern: `[<>\[\],?]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// The parser holds no per-parse state, so one instance is shared
var typeParser = participle.MustBuild[typeGrammar](
	participle.Lexer(typeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseTypeExpr parses the source text of a Java type into a TypeExpr
func ParseTypeExpr(text string) (TypeExpr, error) {
	parsed, err := typeParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("parse type %q: %w", text, err)
	}
	return parsed.toExpr(), nil
}

func (g *typeGrammar) toExpr() TypeExpr {
	expr := g.Element.toExpr()
	if g.Keyword != "" && g.Bound != nil {
		return &Bounded{Lhs: expr, Keyword: g.Keyword, Rhs: g.Bound.toExpr()}
	}
	return expr
}

func (e *elementGrammar) toExpr() TypeExpr {
	var expr TypeExpr
	if e.Name == "?" {
		expr = &Wildcard{}
	} else {
		expr = &Simple{Name: e.Name}
	}

	if len(e.Args) > 0 {
		args := make([]TypeExpr, len(e.Args))
		for ind, arg := range e.Args {
			args[ind] = arg.toExpr()
		}
		expr = &Generic{Outer: expr, Args: args}
	}

	for range e.Dims {
		expr = &Array{Elem: expr}
	}
	return expr
}
