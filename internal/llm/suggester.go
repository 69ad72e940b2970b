package llm

import (
	"context"
	"fmt"

	"github.com/aberg/wordbergler/internal/model"
)

// Suggester wraps an optional LLM provider. Suggestion is a side
// channel: its words only reach generation when the user merges them
// into a profile explicitly.
type Suggester struct {
	provider Provider
	config   Config
}

// NewSuggester creates a suggester from configuration. An empty
// provider name yields a disabled suggester, not an error.
func NewSuggester(config Config) (*Suggester, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Suggester{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Suggester) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the active provider's name, or "" when disabled
func (s *Suggester) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// SuggestWords asks the provider for extra seed words for the profile.
// A disabled suggester returns nil. An unreachable provider returns a
// result whose warnings say so instead of an error, so callers can
// report and move on.
func (s *Suggester) SuggestWords(ctx context.Context, profile model.Profile) (*model.Suggestions, error) {
	if s.provider == nil {
		return nil, nil
	}

	if !s.provider.IsAvailable(ctx) {
		return &model.Suggestions{
			Provider: s.provider.Name(),
			Warnings: []string{fmt.Sprintf("provider %s is not available; check credentials and connectivity", s.provider.Name())},
		}, nil
	}

	resp, err := s.provider.Suggest(ctx, SuggestRequest{
		Profile:        profile,
		Model:          s.config.Model,
		MaxSuggestions: s.config.MaxSuggestions,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	result := &model.Suggestions{
		Provider: s.provider.Name(),
		Model:    resp.Model,
		Words:    resp.Words,
	}
	for _, line := range resp.Rejected {
		result.Warnings = append(result.Warnings, fmt.Sprintf("dropped malformed suggestion line: %q", line))
	}

	return result, nil
}
