package parsing

import (
	"testing"

	"github.com/NickyBoy89/methodmap/fst"
)

const shapeSource = `
package com.acme.shapes;

import java.util.List;
import static java.lang.Math.max;

public class Shape {
	private int sides;

	public Shape(int sides) { this.sides = sides; }

	public List<String> names() { return null; }

	static class Corner {
		double angle() { return 0; }
	}

	enum Kind {
		ROUND, SQUARE;

		Kind next() { return this; }
	}
}

interface Drawable {
	void draw(Canvas c);
}
`

func buildUnit(t *testing.T, source string) *fst.NonTerminal {
	t.Helper()
	file := SourceFile{Name: "com/acme/shapes/Shape.java", Feature: "Base", Source: []byte(source)}
	if err := file.ParseAST(); err != nil {
		t.Fatalf("Failed to parse AST: %v", err)
	}
	defer file.Close()
	return file.BuildUnit()
}

func TestBuildUnit(t *testing.T) {
	unit := buildUnit(t, shapeSource)

	if unit.Kind() != fst.KindCompilationUnit || unit.Name() != "com/acme/shapes/Shape.java" {
		t.Fatalf("Unexpected unit %s %s", unit.Kind(), unit.Name())
	}
	if unit.Feature() != "Base" {
		t.Errorf("Expected feature Base, got %s", unit.Feature())
	}

	packages := fst.ChildrenOfKind(unit, fst.KindPackage)
	if len(packages) != 1 || packages[0].Body() != "package com.acme.shapes;" {
		t.Errorf("Unexpected package declarations: %v", packages)
	}
	if imports := fst.ChildrenOfKind(unit, fst.KindImport); len(imports) != 2 {
		t.Errorf("Expected 2 imports, got %d", len(imports))
	}

	classes := fst.ChildrenOfKind(unit, fst.KindClass)
	if len(classes) != 2 {
		t.Fatalf("Expected 2 top-level types, got %d", len(classes))
	}
	shape, drawable := classes[0], classes[1]
	if shape.Name() != "Shape" || drawable.Name() != "Drawable" {
		t.Errorf("Unexpected type names %s, %s", shape.Name(), drawable.Name())
	}

	ctors := fst.ChildrenOfKind(shape, fst.KindConstructor)
	if len(ctors) != 1 || ctors[0].Name() != "Shape" {
		t.Fatalf("Expected one Shape constructor, got %v", ctors)
	}
	if ctors[0].Body() != "public Shape(int sides) { this.sides = sides; }" {
		t.Errorf("Unexpected constructor body %q", ctors[0].Body())
	}

	methods := fst.ChildrenOfKind(shape, fst.KindMethod)
	if len(methods) != 1 || methods[0].Name() != "names" {
		t.Errorf("Expected only the names method, got %v", methods)
	}

	nested := fst.ChildrenOfKind(shape, fst.KindClass)
	if len(nested) != 2 {
		t.Fatalf("Expected 2 nested types, got %d", len(nested))
	}
	if got := fst.ChildrenOfKind(nested[0], fst.KindMethod); len(got) != 1 || got[0].Name() != "angle" {
		t.Errorf("Expected the angle method in Corner, got %v", got)
	}
	if got := fst.ChildrenOfKind(nested[1], fst.KindMethod); len(got) != 1 || got[0].Name() != "next" {
		t.Errorf("Expected the next method in Kind, got %v", got)
	}

	if got := fst.ChildrenOfKind(drawable, fst.KindMethod); len(got) != 1 || got[0].Body() != "void draw(Canvas c);" {
		t.Errorf("Expected the abstract draw method, got %v", got)
	}
}

func TestBuildUnit_Records(t *testing.T) {
	unit := buildUnit(t, `
record Point(int x, int y) {
	Point(int x) { this(x, 0); }
	int sum() { return x + y; }
}
`)

	classes := fst.ChildrenOfKind(unit, fst.KindClass)
	if len(classes) != 1 || classes[0].Name() != "Point" {
		t.Fatalf("Expected the Point record, got %v", classes)
	}
	if ctors := fst.ChildrenOfKind(classes[0], fst.KindConstructor); len(ctors) != 1 {
		t.Errorf("Expected one constructor, got %d", len(ctors))
	}
	if methods := fst.ChildrenOfKind(classes[0], fst.KindMethod); len(methods) != 1 {
		t.Errorf("Expected the sum method, got %d", len(methods))
	}
}

func TestBuildUnit_BeforeParse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic when building an unparsed file")
		}
	}()
	file := SourceFile{Name: "Foo.java"}
	file.BuildUnit()
}
