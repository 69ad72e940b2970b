package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aberg/wordbergler/internal/llm"
	"github.com/aberg/wordbergler/internal/model"
	"github.com/aberg/wordbergler/internal/wordlist"
	"github.com/spf13/cobra"
)

var (
	suggestProfile string
	llmProvider    string
	llmModel       string
	suggestCount   int
	suggestOut     string
	suggestMerge   string
	suggestTimeout time.Duration
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask an LLM for additional seed words",
	Long: `Suggest sends the known profile facts to an LLM and asks for extra
seed words a target like this might use in credentials.

Suggestions are a side channel: they never flow into generation on
their own. Review the printed words and merge the keepers into a
profile with --merge, or save them with --out.

API keys come from the environment (OPENAI_API_KEY, ANTHROPIC_API_KEY,
OLLAMA_BASE_URL).

Example:
  wordbergler suggest --profile target.yaml
  wordbergler suggest --profile target.yaml --llm-provider ollama --llm-model llama3.1:8b
  wordbergler suggest --profile target.yaml --merge target.yaml`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringVar(&suggestProfile, "profile", "", "profile YAML path (required)")
	_ = suggestCmd.MarkFlagRequired("profile")

	// Output flags
	suggestCmd.Flags().StringVar(&suggestOut, "out", "", "write accepted suggestions to this file")
	suggestCmd.Flags().StringVar(&suggestMerge, "merge", "", "merge accepted suggestions into this profile's extra pool")

	// LLM flags
	suggestCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	suggestCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (blank = provider default)")
	suggestCmd.Flags().IntVar(&suggestCount, "count", 30, "max suggestions to request")
	suggestCmd.Flags().DurationVar(&suggestTimeout, "timeout", 60*time.Second, "timeout for the LLM request")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	profile, err := model.LoadProfile(suggestProfile)
	if err != nil {
		return err
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel // blank lets each provider pick its default
	cfg.LLM.MaxSuggestions = suggestCount
	cfg.LLM.Timeout = suggestTimeout

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	suggester, err := llm.NewSuggester(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return err
	}
	if !suggester.IsEnabled() {
		return fmt.Errorf("no LLM provider configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Asking %s for up to %d seed words...\n", suggester.ProviderName(), suggestCount)
		fmt.Fprintln(os.Stderr)
	}

	suggestions, err := suggester.SuggestWords(ctx, *profile)
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	for _, warning := range suggestions.Warnings {
		fmt.Fprintf(os.Stderr, "⚠️  %s\n", warning)
	}

	if len(suggestions.Words) == 0 {
		fmt.Fprintln(os.Stderr, "No usable suggestions returned.")
		return nil
	}

	fmt.Fprintf(os.Stderr, "✓ %d suggestions from %s/%s\n", len(suggestions.Words), suggestions.Provider, suggestions.Model)
	fmt.Fprintln(os.Stderr)

	// Accepted words go to stdout so they can be piped
	for _, word := range suggestions.Words {
		fmt.Println(word)
	}

	if suggestOut != "" {
		if err := wordlist.WriteFile(suggestOut, suggestions.Words); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\n✓ Wrote %d words to %s\n", len(suggestions.Words), suggestOut)
	}

	// mergeIntoProfile is defined in harvest.go and shared here
	if suggestMerge != "" {
		added, err := mergeIntoProfile(suggestMerge, suggestions.Words)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\n✓ Merged %d new words into %s\n", added, suggestMerge)
	}

	return nil
}
