package llm

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aberg/wordbergler/internal/model"
)

func TestSanitizeWords_AcceptsBareTokens(t *testing.T) {
	raw := "liverpool\nKopite\nanfield96\n"

	words, rejected := SanitizeWords(raw, 0)

	want := []string{"liverpool", "kopite", "anfield96"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
	if len(rejected) != 0 {
		t.Errorf("rejected = %v, want none", rejected)
	}
}

func TestSanitizeWords_StripsListMarkers(t *testing.T) {
	raw := "- anfield\n* kop\n2. shankly\n10) paisley\n"

	words, rejected := SanitizeWords(raw, 0)

	want := []string{"anfield", "kop", "shankly", "paisley"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
	if len(rejected) != 0 {
		t.Errorf("rejected = %v, want none", rejected)
	}
}

func TestSanitizeWords_RejectsProseAndURLs(t *testing.T) {
	raw := "liverpool\nHere are some suggestions:\nhttps://example.com/fans\nthe reds\nkopite\n"

	words, rejected := SanitizeWords(raw, 0)

	wantWords := []string{"liverpool", "kopite"}
	if !reflect.DeepEqual(words, wantWords) {
		t.Errorf("words = %v, want %v", words, wantWords)
	}

	wantRejected := []string{"Here are some suggestions:", "https://example.com/fans", "the reds"}
	if !reflect.DeepEqual(rejected, wantRejected) {
		t.Errorf("rejected = %v, want %v", rejected, wantRejected)
	}
}

func TestSanitizeWords_DedupesCaseInsensitively(t *testing.T) {
	words, _ := SanitizeWords("Anfield\nanfield\nANFIELD\nkop\n", 0)

	want := []string{"anfield", "kop"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
}

func TestSanitizeWords_CapsAtMax(t *testing.T) {
	words, _ := SanitizeWords("one\ntwo\nthree\nfour\n", 2)

	want := []string{"one", "two"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
}

func TestSanitizeWords_SkipsBlankLines(t *testing.T) {
	words, rejected := SanitizeWords("\n\nalpha\n\n\nbeta\n\n", 0)

	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
	if len(rejected) != 0 {
		t.Errorf("rejected = %v, want none", rejected)
	}
}

func TestBuildPrompt_ListsKnownFacts(t *testing.T) {
	profile := model.Profile{
		Names:     []string{"John Smith"},
		Brands:    []string{"Nike"},
		Hobbies:   []string{"rock climbing"},
		BirthYear: 1990,
	}

	prompt := BuildPrompt(profile, 25)

	for _, expected := range []string{"John Smith", "Nike", "rock climbing", "1990", "up to 25", "ONE bare word per line"} {
		if !strings.Contains(prompt, expected) {
			t.Errorf("prompt missing %q", expected)
		}
	}
}

func TestBuildPrompt_OmitsEmptySections(t *testing.T) {
	prompt := BuildPrompt(model.Profile{Names: []string{"Jane Doe"}}, 0)

	for _, absent := range []string{"Brands:", "Shows:", "Birth year:"} {
		if strings.Contains(prompt, absent) {
			t.Errorf("prompt lists empty section %q", absent)
		}
	}
}
