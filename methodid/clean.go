package methodid

import (
	"strings"
	"unicode"
)

var modifierKeywords = map[string]bool{
	"public":       true,
	"private":      true,
	"protected":    true,
	"static":       true,
	"final":        true,
	"synchronized": true,
	"native":       true,
	"abstract":     true,
	"transient":    true,
	"strictfp":     true,
	"default":      true,
	"volatile":     true,
}

// cleanTypeText drops leading annotations, modifier keywords and a method's
// type parameter clause from a type, leaving only the type itself.
//
// Ex: "@Nonnull public static <T> List<T>" -> "List<T>"
func cleanTypeText(text string) string {
	text = strings.TrimSpace(text)
	for {
		var rest string
		switch {
		case strings.HasPrefix(text, "@"):
			rest = skipAnnotation(text)
		case strings.HasPrefix(text, "<"):
			rest = skipBalanced(text, '<', '>')
		default:
			word := leadingIdentifier(text)
			if !modifierKeywords[word] {
				return text
			}
			rest = text[len(word):]
		}
		text = strings.TrimSpace(rest)
	}
}

// parameterType returns the type of a single formal parameter. C-style array
// dimensions written after the name are moved onto the type.
//
// Ex: "final Map<K, V> m" -> "Map<K, V>"
// Ex: "int a[]" -> "int[]"
func parameterType(param string) string {
	param = cleanTypeText(param)

	var dims string
	for {
		trimmed := strings.TrimSpace(strings.TrimSuffix(param, "]"))
		if trimmed == param || !strings.HasSuffix(trimmed, "[") {
			break
		}
		param = strings.TrimSpace(strings.TrimSuffix(trimmed, "["))
		dims += "[]"
	}

	name := trailingIdentifier(param)
	typ := strings.TrimSpace(param[:len(param)-len(name)])
	if typ == "" {
		// Only a type was given, without a parameter name
		return param + dims
	}
	return typ + dims
}

func isIdentifierRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func leadingIdentifier(text string) string {
	end := strings.IndexFunc(text, func(r rune) bool { return !isIdentifierRune(r) })
	if end < 0 {
		return text
	}
	return text[:end]
}

func trailingIdentifier(text string) string {
	start := strings.LastIndexFunc(text, func(r rune) bool { return !isIdentifierRune(r) })
	return text[start+1:]
}

// skipAnnotation returns the text after a leading annotation such as
// `@Override` or `@Size(min = 1)`
func skipAnnotation(text string) string {
	rest := text[1:]
	end := strings.IndexFunc(rest, func(r rune) bool { return !isIdentifierRune(r) && r != '.' })
	if end < 0 {
		return ""
	}
	rest = strings.TrimLeftFunc(rest[end:], unicode.IsSpace)
	if strings.HasPrefix(rest, "(") {
		return skipBalanced(rest, '(', ')')
	}
	return rest
}

// skipBalanced returns the text after the group that starts text and ends at
// its matching close rune
func skipBalanced(text string, openRune, closeRune rune) string {
	depth := 0
	for ind, r := range text {
		switch r {
		case openRune:
			depth++
		case closeRune:
			depth--
			if depth == 0 {
				return text[ind+1:]
			}
		}
	}
	return ""
}
