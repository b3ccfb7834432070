// Package names provides the identifier transforms used when deriving
// DynamoDB table and attribute names from Go declarations.
package names

import (
	"strings"
	"unicode"
)

// LowerCamel converts a snake_case identifier into lowerCamelCase. The first
// segment is lowercased whole; each later segment gets an uppercased first
// letter. A name without underscores has only its first letter lowered
// (acronyms like "ID" are lowered whole), which keeps the function
// idempotent: a second pass over camel output finds no underscores and
// changes nothing.
func LowerCamel(name string) string {
	if name == "" {
		return name
	}

	segments := strings.Split(name, "_")
	if len(segments) == 1 {
		if strings.ToUpper(name) == name {
			return strings.ToLower(name)
		}
		runes := []rune(name)
		runes[0] = unicode.ToLower(runes[0])
		return string(runes)
	}

	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(strings.ToLower(segments[0]))
	for _, seg := range segments[1:] {
		if seg == "" {
			continue
		}
		runes := []rune(strings.ToLower(seg))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// Pluralize guesses the plural form of a type name. It applies the
// consonant-y rule (Category -> Categories), the sibilant rule
// (Box -> Boxes, Dish -> Dishes) and otherwise appends "s".
func Pluralize(name string) string {
	if name == "" {
		return name
	}

	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "y") && !endsInVowelY(lower):
		return name[:len(name)-1] + "ies"
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return name + "es"
	default:
		return name + "s"
	}
}

// endsInVowelY reports whether the name ends in a vowel followed by y,
// e.g. "day", which pluralizes with a plain "s".
func endsInVowelY(lower string) bool {
	if len(lower) < 2 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(lower[len(lower)-2]))
}
