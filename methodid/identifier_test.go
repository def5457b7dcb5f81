package methodid

import (
	"errors"
	"strings"
	"testing"

	"github.com/NickyBoy89/methodmap/fst"
	"github.com/NickyBoy89/methodmap/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newClass builds a feature holding one compilation unit with the given
// declarations and a class named className, and returns the class
func newClass(feature, className string, decls ...string) *fst.NonTerminal {
	root := fst.NewNonTerminal(fst.KindFeature, feature, feature)
	unit := fst.NewNonTerminal(fst.KindCompilationUnit, className+".java", "")
	root.AddChild(unit)
	for _, decl := range decls {
		kind := fst.KindImport
		if strings.HasPrefix(decl, "package") {
			kind = fst.KindPackage
		}
		unit.AddChild(fst.NewTerminal(kind, string(kind), decl, ""))
	}
	class := fst.NewNonTerminal(fst.KindClass, className, "")
	unit.AddChild(class)
	return class
}

func addMethod(class *fst.NonTerminal, name, body string) *fst.Terminal {
	method := fst.NewTerminal(fst.KindMethod, name, body, "")
	class.AddChild(method)
	return method
}

func addConstructor(class *fst.NonTerminal, body string) *fst.Terminal {
	ctor := fst.NewTerminal(fst.KindConstructor, class.Name(), body, "")
	class.AddChild(ctor)
	return ctor
}

func TestNew_Method(t *testing.T) {
	class := newClass("Base", "Foo", "package com.acme;", "import java.util.List;")
	method := addMethod(class, "bar", "List<String> bar(int x) { return null; }")

	id, err := New(method, class)
	require.NoError(t, err)

	assert.False(t, id.Constructor)
	assert.Equal(t, "bar", id.MethodName)
	assert.Equal(t, "Foo", id.ClassName)
	assert.Equal(t, "com.acme", id.ClassPackage)
	assert.Equal(t, []string{"int"}, id.ParameterTypes)
	assert.Equal(t, "java.util.List<java.lang.String>", id.ReturnType)
	assert.Equal(t, "Base", id.OriginFeature)

	assert.Equal(t, "com.acme.Foo.bar(int)java.util.List<java.lang.String>=Base", id.String())
	assert.Equal(t, "com.acme.Foo.bar(I)Ljava/util/List;=Base", id.JNISignature())
}

func TestNew_Constructor(t *testing.T) {
	class := newClass("Base", "Foo")
	ctor := addConstructor(class, "Foo(int a, String b) { }")

	id, err := New(ctor, class)
	require.NoError(t, err)

	assert.True(t, id.Constructor)
	assert.Empty(t, id.MethodName)
	assert.Empty(t, id.ReturnType)
	assert.Equal(t, "Foo(int;java.lang.String)=Base", id.String())
	assert.Equal(t, "Foo.<init>(ILjava/lang/String;)=Base", id.JNISignature())
}

func TestNew_NoParameters(t *testing.T) {
	class := newClass("Base", "Foo", "package com.acme;")
	method := addMethod(class, "run", "public void run() {}")

	id, err := New(method, class)
	require.NoError(t, err)

	assert.NotNil(t, id.ParameterTypes)
	assert.Empty(t, id.ParameterTypes)
	assert.Equal(t, "com.acme.Foo.run()void=Base", id.String())
	assert.Equal(t, "com.acme.Foo.run()V=Base", id.JNISignature())
}

func TestNew_ParameterForms(t *testing.T) {
	class := newClass("Base", "Foo", "package com.acme;", "import java.util.Map;", "import java.util.List;")
	method := addMethod(class, "put",
		"@Override public final <K> List<K> put(final Map<K, List<String>> m, @Nonnull Node node, int grid[][], String... rest) { return null; }")

	id, err := New(method, class)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"java.util.Map<com.acme.K, java.util.List<java.lang.String>>",
		"com.acme.Node",
		"int[][]",
		"java.lang.String[]",
	}, id.ParameterTypes)
	assert.Equal(t, "java.util.List<com.acme.K>", id.ReturnType)
	assert.Equal(t,
		"com.acme.Foo.put(Ljava/util/Map;Lcom/acme/Node;[[I[Ljava/lang/String;)Ljava/util/List;=Base",
		id.JNISignature())
}

func TestNew_SeparateUnits(t *testing.T) {
	base := newClass("Base", "Foo", "import java.util.List;", "import a.Node;")
	refinement := newClass("Logging", "Foo", "package com.acme;", "import b.Node;", "import java.util.Map;")
	method := addMethod(refinement, "index", "Map<String, Node> index(List<Node> nodes) { return null; }")

	id, err := New(method, base)
	require.NoError(t, err)

	assert.Equal(t, "com.acme", id.ClassPackage, "package falls back to the method's unit")
	assert.Equal(t, []string{"java.util.List<b.Node>"}, id.ParameterTypes)
	assert.Equal(t, "java.util.Map<java.lang.String, b.Node>", id.ReturnType)
	assert.Equal(t, "Logging", id.OriginFeature)
}

func TestNew_ClassPackageWins(t *testing.T) {
	base := newClass("Base", "Foo", "package com.acme;")
	refinement := newClass("Logging", "Foo", "package com.other;")
	method := addMethod(refinement, "touch", "void touch(Bar b) {}")

	id, err := New(method, base)
	require.NoError(t, err)

	assert.Equal(t, "com.acme", id.ClassPackage)
	assert.Equal(t, []string{"com.acme.Bar"}, id.ParameterTypes)
}

func TestNew_Panics(t *testing.T) {
	class := newClass("Base", "Foo")
	field := fst.NewTerminal(fst.KindImport, "import", "import java.util.List;", "")
	class.AddChild(field)

	assert.Panics(t, func() { _, _ = New(field, class) })
	assert.Panics(t, func() { _, _ = New(nil, class) })

	method := addMethod(class, "bar", "void bar() {}")
	assert.Panics(t, func() { _, _ = New(method, nil) })
	assert.Panics(t, func() { _, _ = New(method, fst.NewNonTerminal(fst.KindClass, "", "")) })
}

type fakeParser struct {
	header signature.Header
	err    error
}

func (f fakeParser) ParseHeader(string) (signature.Header, error) {
	return f.header, f.err
}

func TestNew_WithHeaderParser(t *testing.T) {
	class := newClass("Base", "Foo", "package com.acme;")
	method := addMethod(class, "ignored", "not java at all")

	parser := fakeParser{header: signature.Header{Name: "bar", ReturnType: "String", Params: "(long a, Bar<T> b)"}}
	id, err := New(method, class, WithHeaderParser(parser))
	require.NoError(t, err)
	assert.Equal(t, "com.acme.Foo.bar(long;com.acme.Bar<com.acme.T>)java.lang.String=Base", id.String())

	boom := errors.New("boom")
	_, err = New(method, class, WithHeaderParser(fakeParser{err: boom}))
	assert.ErrorIs(t, err, boom)
}

func TestNew_UnparseableDeclaration(t *testing.T) {
	class := newClass("Base", "Foo")
	method := addMethod(class, "bar", "int x = 3;")

	_, err := New(method, class)
	assert.ErrorIs(t, err, signature.ErrNoDeclaration)
}

func TestDeepClone(t *testing.T) {
	original := &Identifier{
		MethodName:     "bar",
		ClassName:      "Foo",
		ParameterTypes: []string{"int", "java.lang.String"},
		ReturnType:     "void",
		OriginFeature:  "Base",
	}

	clone := original.DeepClone()
	require.Equal(t, original, clone)
	assert.NotSame(t, original, clone)

	clone.ParameterTypes = append(clone.ParameterTypes, "long")
	clone.ParameterTypes[0] = "byte"
	clone.MethodName = "baz"

	assert.Equal(t, []string{"int", "java.lang.String"}, original.ParameterTypes)
	assert.Equal(t, "bar", original.MethodName)

	empty := (&Identifier{ClassName: "Foo"}).DeepClone()
	assert.NotNil(t, empty.ParameterTypes)
}

func TestSignatureIgnoresFeature(t *testing.T) {
	a := &Identifier{ClassName: "Foo", MethodName: "bar", ParameterTypes: []string{}, ReturnType: "void", OriginFeature: "Base"}
	b := a.DeepClone()
	b.OriginFeature = "Logging"

	assert.Equal(t, a.Signature(), b.Signature())
	assert.NotEqual(t, a.String(), b.String())
}

func TestNew_KindMismatch(t *testing.T) {
	class := newClass("Base", "Foo")
	ctor := addConstructor(class, "void bar() {}")

	_, err := New(ctor, class)
	assert.ErrorIs(t, err, ErrKindMismatch)

	method := addMethod(class, "Foo", "Foo(int a) {}")
	_, err = New(method, class)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestNew_PanicValues(t *testing.T) {
	class := newClass("Base", "Foo")
	method := addMethod(class, "bar", "void bar() {}")

	for _, build := range []func(){
		func() { _, _ = New(nil, class) },
		func() { _, _ = New(method, nil) },
	} {
		func() {
			defer func() {
				_, isErr := recover().(error)
				assert.True(t, isErr, "panic value should be an error")
			}()
			build()
		}()
	}
}
