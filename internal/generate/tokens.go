package generate

import (
	"strings"
	"unicode"
)

// StripSpaces removes all whitespace from a token, fusing multi-word
// input into a single base word ("John Smith" -> "JohnSmith")
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Capitalize upper-cases the first rune and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// CleanUsername keeps only characters valid in a username: letters,
// digits, dots, and underscores
func CleanUsername(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_':
			return r
		}
		return -1
	}, s)
}

// SplitFirstLast splits a full name into (first, last). Middle names
// are dropped; a single token becomes (first, "")
func SplitFirstLast(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}

// CleanTokens trims every token and drops the empties, preserving order
func CleanTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// dedupe removes duplicate words while preserving first-seen order
func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	var unique []string

	for _, w := range words {
		if w == "" {
			continue
		}
		if !seen[w] {
			seen[w] = true
			unique = append(unique, w)
		}
	}

	return unique
}
