package score

import (
	"unicode"
	"unicode/utf8"

	"github.com/aberg/wordbergler/internal/model"
)

// Class buckets a candidate by how guessable it looks
type Class int

const (
	Weak Class = iota
	Fair
	Strong
)

// String returns the lowercase class name
func (c Class) String() string {
	switch c {
	case Strong:
		return "strong"
	case Fair:
		return "fair"
	default:
		return "weak"
	}
}

// Scorer classifies candidates by length and character variety.
// Classification is descriptive only: it feeds the run summary and
// never filters or reorders the output lists
type Scorer struct {
	fairLength   int
	strongLength int
}

// NewScorer creates a scorer with the standard length thresholds
func NewScorer() *Scorer {
	return &Scorer{
		fairLength:   8,
		strongLength: 12,
	}
}

// Classify buckets a single candidate
func (s *Scorer) Classify(candidate string) Class {
	length := utf8.RuneCountInString(candidate)
	classes := charClasses(candidate)

	switch {
	case length >= s.strongLength && classes >= 3:
		return Strong
	case length >= s.fairLength && classes >= 2:
		return Fair
	default:
		return Weak
	}
}

// Summarize classifies every candidate and returns the distribution
func (s *Scorer) Summarize(candidates []string) model.Strength {
	var dist model.Strength
	for _, c := range candidates {
		switch s.Classify(c) {
		case Strong:
			dist.Strong++
		case Fair:
			dist.Fair++
		default:
			dist.Weak++
		}
	}
	return dist
}

// charClasses counts which of the four character classes appear:
// lowercase, uppercase, digits, and everything else
func charClasses(s string) int {
	var lower, upper, digit, other bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}

	count := 0
	for _, present := range []bool{lower, upper, digit, other} {
		if present {
			count++
		}
	}
	return count
}
