package astutil

import (
	"strings"
)

// SplitTopLevel splits a comma-separated list on its top-level commas only,
// treating `<` and `>` as nesting. Every element is trimmed, and the final
// element is always emitted, so an empty input yields a single empty element.
//
// Ex: "Bar, Bla<X,Y>" -> ["Bar", "Bla<X,Y>"]
// Ex: "int a, Map<K, V> m" -> ["int a", "Map<K, V> m"]
func SplitTopLevel(list string) []string {
	var result []string
	var current strings.Builder
	depth := 0

	for _, ch := range list {
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				result = append(result, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
		}
		current.WriteRune(ch)
	}

	return append(result, strings.TrimSpace(current.String()))
}

// StripParens removes one pair of surrounding parentheses from a parameter
// list, if present
func StripParens(paramList string) string {
	paramList = strings.TrimSpace(paramList)
	paramList = strings.TrimPrefix(paramList, "(")
	paramList = strings.TrimSuffix(paramList, ")")
	return strings.TrimSpace(paramList)
}
