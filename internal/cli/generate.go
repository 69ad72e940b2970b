package cli

import (
	"fmt"
	"os"

	"github.com/aberg/wordbergler/internal/model"
	"github.com/aberg/wordbergler/internal/pipeline"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	profilePath  string
	interactive  bool
	passwordFile string
	usernameFile string
	reportFile   string
	noProgress   bool
	minLen       int
	maxLen       int
	yearFloor    int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate password and username wordlists from a profile",
	Long: `Generate builds two prioritized candidate lists from personal facts:
- Password candidates from name, brand, and title pools with casing
  variations and year, number, and symbol tails
- Username candidates from first/last combinations with separators,
  birth years, and leetspeak

Facts come from a profile file, or from an interactive interview when
no profile is given. Comma-separated answers are accepted; blank
answers skip a field.

Example:
  wordbergler generate --profile target.yaml
  wordbergler generate --profile target.yaml --min-len 8 --report run.json
  wordbergler generate`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Input flags
	generateCmd.Flags().StringVar(&profilePath, "profile", "", "profile YAML path (omit to answer prompts)")
	generateCmd.Flags().BoolVar(&interactive, "interactive", false, "answer prompts even when --profile is set")

	// Output flags
	generateCmd.Flags().StringVar(&passwordFile, "passwords", "custom_wordlist.txt", "password list output path")
	generateCmd.Flags().StringVar(&usernameFile, "usernames", "likely_usernames.txt", "username list output path")
	generateCmd.Flags().StringVar(&reportFile, "report", "", "JSON run report path (optional)")
	generateCmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")

	// Rule flags
	generateCmd.Flags().IntVar(&minLen, "min-len", 6, "minimum password candidate length")
	generateCmd.Flags().IntVar(&maxLen, "max-len", 16, "maximum password candidate length")
	generateCmd.Flags().IntVar(&yearFloor, "year-floor", 1980, "oldest year appended when the birth year is unknown")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Output.PasswordFile = passwordFile
	cfg.Output.UsernameFile = usernameFile
	cfg.Output.ReportFile = reportFile
	cfg.Output.Progress = !noProgress
	cfg.Output.Verbose = verbose
	cfg.Rules.MinLength = minLen
	cfg.Rules.MaxLength = maxLen
	cfg.Rules.YearFloor = yearFloor

	// Load the profile, or collect one at the prompt. The interview may
	// adjust the length bounds
	var profile *model.Profile
	if profilePath != "" && !interactive {
		loaded, err := model.LoadProfile(profilePath)
		if err != nil {
			return err
		}
		profile = loaded
	} else {
		collected, err := NewInterviewer(os.Stdin, os.Stderr).Run(&cfg.Rules)
		if err != nil {
			return fmt.Errorf("interview: %w", err)
		}
		profile = collected
	}

	if profile.IsEmpty() {
		fmt.Fprintln(os.Stderr, "Profile contains no facts; both lists will be empty.")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Names: %d\n", len(profile.AllNames()))
		fmt.Fprintf(os.Stderr, "Titles: %d\n", len(profile.AllTitles()))
		fmt.Fprintf(os.Stderr, "Length bounds: %d-%d\n", cfg.Rules.MinLength, cfg.Rules.MaxLength)
		fmt.Fprintln(os.Stderr)
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	// Wire the progress bar into the pipeline hooks. The bar is created
	// on the first tick, once the overall base count is known
	if cfg.Output.Progress {
		var bar *progressbar.ProgressBar
		desc := "expanding"
		p.OnPool = func(name string, bases int) {
			desc = "expanding " + name
			if bar != nil {
				bar.Describe(desc)
			}
		}
		p.OnProgress = func(done, total int) {
			if bar == nil {
				bar = newGenerateBar(int64(total), desc)
			}
			_ = bar.Set64(int64(done))
		}
	}

	result, err := p.Generate(profile)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	// Write candidate lists
	if err := p.WriteFiles(result); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n[+] %s created.\n", cfg.Output.PasswordFile)
	fmt.Fprintf(os.Stderr, "[+] %s created.\n", cfg.Output.UsernameFile)

	if cfg.Output.ReportFile != "" {
		if err := p.WriteReport(result, cfg.Output.ReportFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "[+] %s created.\n", cfg.Output.ReportFile)
	}
	fmt.Fprintln(os.Stderr)

	p.RenderSummary(result)

	return nil
}

// newGenerateBar builds the progress bar shown while base words are
// expanded. It writes to stderr so stdout stays reserved for results
func newGenerateBar(total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
