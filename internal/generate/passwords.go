package generate

import (
	"unicode/utf8"

	"github.com/aberg/wordbergler/internal/model"
)

// Tails holds the numeric and symbol suffixes appended to base words
type Tails struct {
	Years   []string // Descending year range, newest first
	Numbers []string // Dates, PINs, phone chunks
	Symbols []string // Default symbols plus profile extras
}

// BuildTails assembles the suffix material from a profile. currentYear
// anchors the year range; yearFloor bounds it when the birth year is
// unknown
func BuildTails(p *model.Profile, currentYear, yearFloor int) Tails {
	pins, extraSymbols := SplitPINsSymbols(p.PINs)

	var dates []string
	for _, d := range p.Dates {
		if n := Digits(d); n != "" {
			dates = append(dates, n)
		}
	}

	var numbers []string
	numbers = append(numbers, dates...)
	numbers = append(numbers, pins...)
	numbers = append(numbers, PhoneChunks(p.Phones)...)

	var symbols []string
	symbols = append(symbols, DefaultSymbols...)
	symbols = append(symbols, extraSymbols...)

	return Tails{
		Years:   YearRange(currentYear, p.BirthYear, yearFloor),
		Numbers: dedupe(numbers),
		Symbols: dedupe(symbols),
	}
}

// ExpandBase emits every password candidate for one base word: the
// base itself, base+year, base+year+symbol, base+number, and
// base+number+symbol. Candidates outside [minLen, maxLen] are dropped
func ExpandBase(base string, tails Tails, minLen, maxLen int) []string {
	var out []string
	emit := func(candidate string) {
		if n := utf8.RuneCountInString(candidate); n >= minLen && n <= maxLen {
			out = append(out, candidate)
		}
	}

	emit(base)

	for _, year := range tails.Years {
		combo := base + year
		emit(combo)
		for _, sym := range tails.Symbols {
			emit(combo + sym)
		}
	}

	for _, num := range tails.Numbers {
		combo := base + num
		emit(combo)
		for _, sym := range tails.Symbols {
			emit(combo + sym)
		}
	}

	return out
}
