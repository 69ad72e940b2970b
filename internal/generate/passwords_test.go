package generate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aberg/wordbergler/internal/model"
)

func TestBuildTails(t *testing.T) {
	profile := &model.Profile{
		Dates:     []string{"0714", "07/23"},
		Phones:    []string{"123-456-7890"},
		PINs:      []string{"1234", "@!"},
		BirthYear: 1990,
	}

	tails := BuildTails(profile, 2026, 1980)

	if tails.Years[0] != "2026" || tails.Years[len(tails.Years)-1] != "1990" {
		t.Errorf("years span %q..%q, want 2026..1990", tails.Years[0], tails.Years[len(tails.Years)-1])
	}

	for _, want := range []string{"0714", "0723", "1234", "7890", "1234567890"} {
		if !containsWord(tails.Numbers, want) {
			t.Errorf("numbers missing %q: %v", want, tails.Numbers)
		}
	}

	// Default symbols first, profile symbols after
	if tails.Symbols[0] != "!" {
		t.Errorf("symbols[0] = %q, want %q", tails.Symbols[0], "!")
	}
	if !containsWord(tails.Symbols, "@!") {
		t.Errorf("symbols missing profile extra: %v", tails.Symbols)
	}
}

func TestBuildTails_DedupesProfileSymbols(t *testing.T) {
	tails := BuildTails(&model.Profile{PINs: []string{"!", "!!"}}, 2026, 1980)

	count := 0
	for _, s := range tails.Symbols {
		if s == "!" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("symbol ! appears %d times, want 1: %v", count, tails.Symbols)
	}
}

func TestExpandBase(t *testing.T) {
	tails := Tails{
		Years:   []string{"1990"},
		Numbers: []string{"1234"},
		Symbols: []string{"!"},
	}

	got := ExpandBase("Smith", tails, 6, 16)

	for _, want := range []string{"Smith1990", "Smith1990!", "Smith1234", "Smith1234!"} {
		if !containsWord(got, want) {
			t.Errorf("ExpandBase missing %q: %v", want, got)
		}
	}

	// The bare base is five runes, below the minimum
	if containsWord(got, "Smith") {
		t.Errorf("ExpandBase kept a too-short candidate: %v", got)
	}
}

func TestExpandBase_EmitsBaseFirst(t *testing.T) {
	got := ExpandBase("password", Tails{Years: []string{"1990"}}, 6, 16)

	if len(got) == 0 || got[0] != "password" {
		t.Fatalf("ExpandBase first candidate = %v, want base word first", got)
	}
}

func TestExpandBase_LengthBounds(t *testing.T) {
	tails := Tails{
		Years:   []string{"1990"},
		Symbols: []string{"!!!"},
	}

	got := ExpandBase("verylongbasewordhere", tails, 6, 16)
	if len(got) != 0 {
		t.Errorf("over-long base produced candidates: %v", got)
	}

	for _, c := range ExpandBase("smith", tails, 6, 10) {
		n := utf8.RuneCountInString(c)
		if n < 6 || n > 10 {
			t.Errorf("candidate %q has length %d outside [6, 10]", c, n)
		}
	}
}

func TestExpandBase_NoEmptyTails(t *testing.T) {
	got := ExpandBase("password", Tails{}, 6, 16)

	if len(got) != 1 || got[0] != "password" {
		t.Fatalf("ExpandBase with no tails = %v, want just the base", got)
	}
	for _, c := range got {
		if strings.TrimSpace(c) == "" {
			t.Error("emitted an empty candidate")
		}
	}
}
