package generate

import (
	"strconv"
	"strings"

	"github.com/aberg/wordbergler/internal/model"
)

// UsernameCombos builds lowercase handle templates for every person in
// the profile: separator fusions of first and last name, initial+last
// forms, birth-year and gamertag suffixes, and pairings with favorite
// brands and hobbies. Casing and leetspeak come later
func UsernameCombos(p *model.Profile) []string {
	var combos []string
	add := func(c string) { combos = append(combos, c) }

	birthYear, yy := "", ""
	if p.BirthYear != 0 {
		birthYear = strconv.Itoa(p.BirthYear)
		if len(birthYear) >= 2 {
			yy = birthYear[len(birthYear)-2:]
		}
	}

	// Brand and hobby nicknames, fused and lowercased
	var favs []string
	for _, fav := range append(append([]string{}, p.Brands...), p.Hobbies...) {
		if f := strings.ToLower(StripSpaces(fav)); f != "" {
			favs = append(favs, f)
		}
	}

	for _, full := range p.AllNames() {
		first, last := SplitFirstLast(full)
		first = strings.ToLower(first)
		last = strings.ToLower(last)
		if first == "" && last == "" {
			continue
		}

		add(first)
		add(last)

		if first != "" && last != "" {
			initial := string([]rune(first)[0])

			add(first + last)
			add(first + "." + last)
			add(first + "_" + last)
			add(initial + last)
			add(initial + "." + last)
			add(initial + "_" + last)
			add(last + first)
			add(last + "." + first)
			add(last + "_" + first)
			add(last + initial)

			if birthYear != "" {
				add(first + last + birthYear)
				add(initial + last + birthYear)
				add(last + yy)
				add(initial + last + yy)
				add(first + yy)
				add(first + birthYear)
				add(last + birthYear)
			}

			for _, tag := range GamertagSuffixes {
				add(first + last + tag)
			}
		}

		for _, fav := range favs {
			if first != "" {
				add(first + fav)
				add(fav + first)
			}
			if last != "" {
				add(last + fav)
				add(fav + last)
			}
		}
	}

	// Clean each combo and drop the empties
	var cleaned []string
	for _, c := range combos {
		if u := CleanUsername(strings.TrimSpace(c)); u != "" {
			cleaned = append(cleaned, u)
		}
	}
	return dedupe(cleaned)
}

// UsernameVariants expands each combo into the full cross product of
// casing forms with and without leetspeak
func UsernameVariants(combos []string) []string {
	var out []string
	for _, c := range combos {
		for _, v := range CaseVariants(c) {
			out = append(out, v, Leet(v))
		}
	}
	return dedupe(out)
}
