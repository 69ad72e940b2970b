package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/aberg/wordbergler/internal/model"
)

// Provider defines the interface for LLM suggestion backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Suggest asks for seed words likely associated with the profile
	Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SuggestRequest contains the input for a suggestion call
type SuggestRequest struct {
	// Profile holds the known facts to riff on
	Profile model.Profile

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxSuggestions caps how many words are requested
	MaxSuggestions int
}

// SuggestResponse contains a provider's suggested seed words
type SuggestResponse struct {
	// Words are the accepted suggestions, lowercased, in response order
	Words []string

	// Rejected are response lines dropped by the output discipline
	Rejected []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// MaxSuggestions caps the suggestion count
	MaxSuggestions int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

const defaultMaxSuggestions = 30

// suggestSystemPrompt frames every provider call the same way.
const suggestSystemPrompt = "You help security testers build targeted wordlists for authorized password audits. Follow the output format exactly."

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:       "", // Disabled by default
		Model:          "",
		Timeout:        30 * time.Second,
		MaxSuggestions: defaultMaxSuggestions,
	}
}

// BuildPrompt constructs the default prompt asking for seed words tied
// to the profile's facts, one bare word per line.
func BuildPrompt(p model.Profile, maxSuggestions int) string {
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are helping build a wordlist for an authorized password audit. Based on the facts below, suggest up to %d additional seed words this person might use in passwords: nicknames and pet forms of the names, slang for the hobbies, product lines of the brands, character names from the shows.

RULES:
1. Answer with ONE bare word per line.
2. No numbering, no bullets, no URLs, no explanations.
3. Use only letters and digits.

Known facts:
`, maxSuggestions)

	fact := func(label string, values []string) {
		if len(values) > 0 {
			fmt.Fprintf(&b, "- %s: %s\n", label, strings.Join(values, ", "))
		}
	}

	fact("Names", p.Names)
	fact("Relatives", p.Relatives)
	fact("Other people", p.Others)
	fact("Brands", p.Brands)
	fact("Shows", p.Shows)
	fact("Actors", p.Actors)
	fact("Hobbies", p.Hobbies)
	fact("Extra words", p.Extra)
	if p.BirthYear > 0 {
		fmt.Fprintf(&b, "- Birth year: %d\n", p.BirthYear)
	}

	return b.String()
}

// SanitizeWords enforces the one-bare-token-per-line output rule on a
// raw model response. Accepted lines are lowercased and deduplicated;
// everything else (multi-word lines, URLs, prose) lands in rejected.
func SanitizeWords(raw string, max int) (words []string, rejected []string) {
	seen := make(map[string]bool)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		candidate := stripListMarker(line)
		if !isBareToken(candidate) {
			rejected = append(rejected, line)
			continue
		}

		word := strings.ToLower(candidate)
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)

		if max > 0 && len(words) >= max {
			break
		}
	}

	return words, rejected
}

// stripListMarker removes bullet and numbering prefixes models add
// despite instructions ("- word", "* word", "3. word").
func stripListMarker(line string) string {
	line = strings.TrimLeft(line, "-*• \t")

	if i := strings.IndexAny(line, ".)"); i > 0 && i <= 3 {
		if _, err := strconv.Atoi(line[:i]); err == nil {
			line = line[i+1:]
		}
	}

	return strings.TrimSpace(line)
}

// isBareToken reports whether s is a single run of letters and digits
func isBareToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// responseTokenBudget sizes the completion for one word per line plus
// a little slack.
func responseTokenBudget(maxSuggestions int) int {
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}
	return 100 + 8*maxSuggestions
}
