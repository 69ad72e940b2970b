package generate

import (
	"reflect"
	"testing"
)

func TestStripSpaces(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John Smith", "JohnSmith"},
		{"  Breaking  Bad  ", "BreakingBad"},
		{"tab\there", "tabhere"},
		{"nospace", "nospace"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripSpaces(tt.in); got != tt.want {
			t.Errorf("StripSpaces(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"smith", "Smith"},
		{"SMITH", "Smith"},
		{"sMiTh", "Smith"},
		{"x", "X"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"j.smith", "j.smith"},
		{"J_Smith", "J_Smith"},
		{"o'brien", "obrien"},
		{"john smith!", "johnsmith"},
		{"@#$%", ""},
		{"josé", "jos"},
	}

	for _, tt := range tests {
		if got := CleanUsername(tt.in); got != tt.want {
			t.Errorf("CleanUsername(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitFirstLast(t *testing.T) {
	tests := []struct {
		in    string
		first string
		last  string
	}{
		{"John Smith", "John", "Smith"},
		{"John Jacob Smith", "John", "Smith"},
		{"Madonna", "Madonna", ""},
		{"  ", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		first, last := SplitFirstLast(tt.in)
		if first != tt.first || last != tt.last {
			t.Errorf("SplitFirstLast(%q) = (%q, %q), want (%q, %q)",
				tt.in, first, last, tt.first, tt.last)
		}
	}
}

func TestCleanTokens(t *testing.T) {
	in := []string{" John Smith ", "", "  ", "Nike"}
	want := []string{"John Smith", "Nike"}

	if got := CleanTokens(in); !reflect.DeepEqual(got, want) {
		t.Errorf("CleanTokens(%v) = %v, want %v", in, got, want)
	}
}

func TestDedupe(t *testing.T) {
	in := []string{"a", "b", "a", "", "c", "b"}
	want := []string{"a", "b", "c"}

	if got := dedupe(in); !reflect.DeepEqual(got, want) {
		t.Errorf("dedupe(%v) = %v, want %v", in, got, want)
	}
}
