package generate

import "testing"

func TestLeet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"password", "p455w0rd"},
		{"johnsmith", "j0hn5m1th"},
		{"SMITH", "5M1TH"},
		{"Elite", "3l1t3"},
		{"xyz", "xyz"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Leet(tt.in); got != tt.want {
			t.Errorf("Leet(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLeet_Total(t *testing.T) {
	// No mapped letter may survive substitution
	got := Leet("assassin")
	for _, r := range got {
		if _, mapped := LeetTable[r]; mapped {
			t.Errorf("Leet(\"assassin\") = %q still contains mapped letter %q", got, r)
		}
	}
}

func TestLeet_FixedPoint(t *testing.T) {
	for _, word := range []string{"johnsmith", "Password", "SASSY", "1337"} {
		once := Leet(word)
		twice := Leet(once)
		if once != twice {
			t.Errorf("Leet(Leet(%q)) = %q, want %q", word, twice, once)
		}
	}
}

func TestLeetTable_CoversBothCases(t *testing.T) {
	for _, pair := range []struct{ lower, upper rune }{
		{'a', 'A'}, {'e', 'E'}, {'i', 'I'}, {'o', 'O'}, {'s', 'S'},
	} {
		lo, okLo := LeetTable[pair.lower]
		up, okUp := LeetTable[pair.upper]
		if !okLo || !okUp {
			t.Fatalf("LeetTable missing entry for %q/%q", pair.lower, pair.upper)
		}
		if lo != up {
			t.Errorf("LeetTable maps %q to %q but %q to %q", pair.lower, lo, pair.upper, up)
		}
	}
}
