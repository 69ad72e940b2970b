package generate

import "strings"

// CaseVariants returns the three casing forms of a word: lower,
// Capitalized, UPPER. Whitespace is fused away first, so the forms
// always have the same length as the fused input
func CaseVariants(word string) []string {
	w := StripSpaces(word)
	if w == "" {
		return nil
	}
	return []string{strings.ToLower(w), Capitalize(w), strings.ToUpper(w)}
}

// InitialLastVariants combines a first initial with a last name
// ("John", "Smith" -> Jsmith, jsmith, JSMITH)
func InitialLastVariants(first, last string) []string {
	if first == "" || last == "" {
		return nil
	}
	root := string([]rune(first)[0]) + last
	return []string{Capitalize(root), strings.ToLower(root), strings.ToUpper(root)}
}

// BrandTitleVariants expands a brand, show, actor, or hobby title.
// Single words get casing variants; multi-word titles also contribute
// the last word, an initial+last fusion, and the fused whole
func BrandTitleVariants(title string) []string {
	parts := strings.Fields(title)
	if len(parts) == 0 {
		return nil
	}
	if len(parts) == 1 {
		return CaseVariants(parts[0])
	}

	first, last := parts[0], parts[len(parts)-1]
	variants := CaseVariants(last)
	variants = append(variants, InitialLastVariants(first, last)...)
	variants = append(variants, CaseVariants(strings.Join(parts, ""))...)
	return dedupe(variants)
}

// DoubleWordVariants fuses every cross pair of two word lists and
// expands each fusion into casing variants, skipping identical pairs
func DoubleWordVariants(words1, words2 []string) []string {
	var combos []string
	for _, w1 := range words1 {
		for _, w2 := range words2 {
			if w1 == w2 {
				continue
			}
			combos = append(combos, CaseVariants(w1+w2)...)
		}
	}
	return dedupe(combos)
}
