package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aberg/wordbergler/internal/harvest"
	"github.com/aberg/wordbergler/internal/model"
	"github.com/aberg/wordbergler/internal/wordlist"
	"github.com/spf13/cobra"
)

var (
	urlFile         string
	harvestOut      string
	harvestMerge    string
	workers         int
	rateLimit       float64
	burstSize       int
	minWordLen      int
	maxWordsPerPage int
	harvestTimeout  time.Duration
	fetchTimeout    time.Duration
	userAgent       string
	maxBytes        int64
	insecureTLS     bool
	noCache         bool
	cacheDir        string
	noRobots        bool
	httpProxy       string
	httpsProxy      string
	noProxy         string
)

// harvestCmd represents the harvest command
var harvestCmd = &cobra.Command{
	Use:   "harvest [url]...",
	Short: "Harvest seed words from web pages",
	Long: `Harvest fetches web pages tied to the target (employer site, club
page, personal blog) and extracts candidate seed words from their
visible text, titles, and meta descriptions.

Pages are fetched in parallel with per-host rate limiting, robots.txt
checks, and a layered fetch cache. The merged word list is
deterministic for a given URL order.

Example:
  wordbergler harvest https://example.com/about
  wordbergler harvest --file urls.txt --out seeds.txt
  wordbergler harvest https://example.com --merge target.yaml`,
	Args: cobra.ArbitraryArgs,
	RunE: runHarvest,
}

func init() {
	rootCmd.AddCommand(harvestCmd)

	// Input and output flags
	harvestCmd.Flags().StringVar(&urlFile, "file", "", "read additional URLs from a file (one per line)")
	harvestCmd.Flags().StringVar(&harvestOut, "out", "harvested_words.txt", "harvested word list output path")
	harvestCmd.Flags().StringVar(&harvestMerge, "merge", "", "merge harvested words into this profile's extra pool")

	// Concurrency flags
	harvestCmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent fetch workers")
	harvestCmd.Flags().Float64Var(&rateLimit, "rate", 2.0, "max requests per second per host")
	harvestCmd.Flags().IntVar(&burstSize, "burst", 4, "request burst size per host")
	harvestCmd.Flags().DurationVar(&harvestTimeout, "timeout", 10*time.Minute, "total timeout for the harvest run")

	// Extraction flags
	harvestCmd.Flags().IntVar(&minWordLen, "min-word-len", 4, "shortest harvested word kept")
	harvestCmd.Flags().IntVar(&maxWordsPerPage, "max-words", 500, "max words kept per page (0 = unlimited)")

	// HTTP flags
	harvestCmd.Flags().DurationVar(&fetchTimeout, "fetch-timeout", 30*time.Second, "timeout for individual page fetches")
	harvestCmd.Flags().StringVar(&userAgent, "ua", "WordBergler/0.2 (+https://github.com/aberg/wordbergler)", "HTTP User-Agent")
	harvestCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	harvestCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	harvestCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the fetch cache (force fresh fetches)")
	harvestCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "fetch cache directory (default: $HOME/.wordbergler/cache)")
	harvestCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt rules")
	harvestCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	harvestCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	harvestCmd.Flags().StringVar(&noProxy, "no-proxy", "", "comma-separated hosts that bypass the proxy")
}

func runHarvest(cmd *cobra.Command, args []string) error {
	urls := args
	if urlFile != "" {
		fromFile, err := harvest.ReadURLFile(urlFile)
		if err != nil {
			return err
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs given: pass them as arguments or with --file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), harvestTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  WordBergler Harvest\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  URLs:      %d\n", len(urls))
	fmt.Fprintf(os.Stderr, "  Workers:   %d\n", workers)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", harvestOut)
	fmt.Fprintf(os.Stderr, "  Timeout:   %v\n", harvestTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = fetchTimeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.HTTP.NoProxy = noProxy
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.RateLimiting.RequestsPerSecond = rateLimit
	cfg.RateLimiting.BurstSize = burstSize
	cfg.Concurrency.Workers = workers
	cfg.Harvest.MinWordLength = minWordLen
	cfg.Harvest.MaxWordsPerPage = maxWordsPerPage
	cfg.Harvest.RespectRobots = !noRobots
	cfg.Output.Verbose = verbose

	// The disk cache defaults to a directory under the home directory
	if cfg.Cache.Enabled && cfg.Cache.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}
		cfg.Cache.Dir = filepath.Join(home, ".wordbergler", "cache")
	}

	h := harvest.NewHarvester(cfg)

	fmt.Fprintf(os.Stderr, "⚙️  Harvesting %d pages with %d workers...\n", len(urls), workers)
	fmt.Fprintf(os.Stderr, "\n")

	result := h.Run(ctx, urls)

	failureCount := 0
	for _, page := range result.Pages {
		if page.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", page.URL, page.Err)
			continue
		}
		note := ""
		if page.FromCache {
			note = " (cached)"
		}
		fmt.Fprintf(os.Stderr, "✓ %s: %d words%s\n", page.URL, len(page.Words), note)
	}

	if err := wordlist.WriteFile(harvestOut, result.Words); err != nil {
		return err
	}

	if harvestMerge != "" {
		added, err := mergeIntoProfile(harvestMerge, result.Words)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Merged %d new words into %s\n", added, harvestMerge)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Harvest Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Pages:     %d (%d failed)\n", len(result.Pages), failureCount)
	fmt.Fprintf(os.Stderr, "  Words:     %d unique\n", len(result.Words))
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", harvestOut)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// mergeIntoProfile appends words to the profile's extra pool, skipping
// ones already present, and saves the profile back. It returns how many
// words were actually added
func mergeIntoProfile(path string, words []string) (int, error) {
	profile, err := model.LoadProfile(path)
	if err != nil {
		return 0, err
	}

	seen := wordlist.NewSet()
	seen.AddAll(profile.Extra)

	added := 0
	for _, w := range words {
		if seen.Add(w) {
			profile.Extra = append(profile.Extra, w)
			added++
		}
	}

	if added > 0 {
		if err := profile.Save(path); err != nil {
			return 0, err
		}
	}

	return added, nil
}
