package methodid

import (
	"strings"
)

// The single-letter descriptor codes of the primitive types
var primitiveCodes = map[string]string{
	"byte":    "B",
	"short":   "S",
	"int":     "I",
	"long":    "J",
	"float":   "F",
	"double":  "D",
	"boolean": "Z",
	"char":    "C",
	"void":    "V",
}

const constructorName = "<init>"

// JNISignature is the native export signature of the declaration, used to
// link a compiled method back to the feature that contributed it.
//
// Ex: com.acme.Foo.bar(I[Ljava/lang/String;)Ljava/util/List;=Base
// Ex: com.acme.Foo.<init>(I)=Base
func (id *Identifier) JNISignature() string {
	var b strings.Builder
	b.WriteString(id.QualifiedClassName())
	b.WriteString(".")
	if id.Constructor {
		b.WriteString(constructorName)
	} else {
		b.WriteString(id.MethodName)
	}

	b.WriteString("(")
	for _, param := range id.ParameterTypes {
		b.WriteString(TypeDescriptor(param))
	}
	b.WriteString(")")

	if !id.Constructor {
		b.WriteString(TypeDescriptor(id.ReturnType))
	}

	b.WriteString("=")
	b.WriteString(id.OriginFeature)
	return b.String()
}

// TypeDescriptor encodes a fully-qualified type in descriptor form. The text
// is cut at its first `<`, so generic arguments and anything written after
// them are dropped, and every `[]` left adds a leading `[`.
//
// Ex: int[][] -> [[I
// Ex: java.util.List<java.lang.String> -> Ljava/util/List;
func TypeDescriptor(typ string) string {
	if ind := strings.Index(typ, "<"); ind >= 0 {
		typ = typ[:ind]
	}
	dims := strings.Count(typ, "[]")
	name := strings.TrimSpace(strings.ReplaceAll(typ, "[]", ""))
	return strings.Repeat("[", dims) + nameDescriptor(name)
}

func nameDescriptor(name string) string {
	if code, primitive := primitiveCodes[name]; primitive {
		return code
	}
	return "L" + strings.ReplaceAll(name, ".", "/") + ";"
}
