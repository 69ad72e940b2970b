package score

import "testing"

func TestScorer_Classify(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		candidate string
		want      Class
	}{
		{"smith", Weak},           // short, single class
		{"johnsmith", Weak},       // long enough but single class
		{"JOHNSMITHNIKE", Weak},   // same, uppercase
		{"smith1990", Fair},       // two classes, nine runes
		{"j0hn5m1th", Fair},       // leet counts as digits
		{"Smith1990!", Fair},      // four classes but under twelve runes
		{"Johnsmith2026", Strong}, // three classes, thirteen runes
		{"Smith1990!!!", Strong},  // four classes, twelve runes
	}

	for _, tt := range tests {
		if got := s.Classify(tt.candidate); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.candidate, got, tt.want)
		}
	}
}

func TestScorer_Summarize(t *testing.T) {
	s := NewScorer()

	dist := s.Summarize([]string{"smith", "smith1990", "Johnsmith2026", "Smith1990!!!"})

	if total := dist.Weak + dist.Fair + dist.Strong; total != 4 {
		t.Errorf("distribution total = %d, want 4", total)
	}
	if dist.Weak != 1 || dist.Fair != 1 || dist.Strong != 2 {
		t.Errorf("distribution = %+v, want 1 weak, 1 fair, 2 strong", dist)
	}
}

func TestClass_String(t *testing.T) {
	if Weak.String() != "weak" || Fair.String() != "fair" || Strong.String() != "strong" {
		t.Errorf("class names = %q/%q/%q", Weak, Fair, Strong)
	}
}
