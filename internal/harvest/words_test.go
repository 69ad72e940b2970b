package harvest

import (
	"reflect"
	"testing"
)

func TestWordExtractor_SkipsScriptAndStyle(t *testing.T) {
	page := `<html><head>
<script>var analyticsToken = "skipme";</script>
<style>.header { color: red; }</style>
</head><body>
<noscript>enablejs</noscript>
<p>Mountain biking photography</p>
</body></html>`

	got := NewWordExtractor(4, 0).Extract(page)

	for _, banned := range []string{"analyticsToken", "skipme", "header", "color", "enablejs"} {
		for _, w := range got {
			if w == banned {
				t.Errorf("Extract() leaked %q from non-visible content", banned)
			}
		}
	}

	want := []string{"Mountain", "biking", "photography"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestWordExtractor_IncludesTitleAndMeta(t *testing.T) {
	page := `<html>
<head>
<title>Acme Rockets</title>
<meta name="keywords" content="propulsion thrusters">
<meta name="description" content="Premium rocket parts">
<meta name="viewport" content="device-width">
</head>
<body><p>Welcome to Acme.</p></body>
</html>`

	got := NewWordExtractor(4, 0).Extract(page)
	want := []string{"Acme", "Rockets", "propulsion", "thrusters", "Premium", "rocket", "parts", "Welcome"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestWordExtractor_MinLengthInRunes(t *testing.T) {
	got := NewWordExtractor(4, 0).Extract("a to ski café naïve windsurfing")
	want := []string{"café", "naïve", "windsurfing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestWordExtractor_FirstOccurrenceOrder(t *testing.T) {
	got := NewWordExtractor(1, 0).Extract("alpha beta alpha gamma beta delta")
	want := []string{"alpha", "beta", "gamma", "delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestWordExtractor_MaxWordsCap(t *testing.T) {
	got := NewWordExtractor(1, 3).Extract("one two three four five")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestWordExtractor_SplitsOnNonLetters(t *testing.T) {
	got := NewWordExtractor(1, 0).Extract("rock-climbing, don't stop! user123")
	want := []string{"rock", "climbing", "don", "t", "stop", "user"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}
