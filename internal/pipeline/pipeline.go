package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aberg/wordbergler/internal/generate"
	"github.com/aberg/wordbergler/internal/model"
	"github.com/aberg/wordbergler/internal/score"
	"github.com/aberg/wordbergler/internal/wordlist"
)

// Pipeline orchestrates the complete generation flow: base pools and
// suffix tails from the profile, candidate expansion, deduplication,
// and the two output lists
type Pipeline struct {
	scorer *score.Scorer
	config *model.Config

	// OnPool, when set, is called once per pool before its bases are
	// expanded
	OnPool func(name string, bases int)
	// OnProgress, when set, is called after each base word is expanded
	// with the number of bases done so far and the overall total
	OnProgress func(done, total int)

	now func() time.Time
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	return &Pipeline{
		scorer: score.NewScorer(),
		config: cfg,
		now:    time.Now,
	}
}

// Result contains the generated candidate lists and the run report
type Result struct {
	Passwords []string // Unique password candidates in pool-priority order
	Usernames []string // Unique username candidates, sorted
	Report    *model.RunReport
}

// Generate runs the full generation flow over a profile. An empty
// profile is not an error; it simply produces empty lists
func (p *Pipeline) Generate(profile *model.Profile) (*Result, error) {
	if profile == nil {
		return nil, fmt.Errorf("nil profile")
	}

	currentYear := p.config.Rules.CurrentYear
	if currentYear == 0 {
		currentYear = p.now().Year()
	}

	// 1. Build base pools and suffix material
	pools := generate.BuildPools(profile)
	tails := generate.BuildTails(profile, currentYear, p.config.Rules.YearFloor)

	total := 0
	for _, pool := range pools {
		total += len(pool.Bases)
	}

	// 2. Expand every pool in priority order into the password set
	passwords := wordlist.NewSet()
	poolStats := make([]model.PoolStat, 0, len(pools))
	done := 0
	for _, pool := range pools {
		if p.OnPool != nil {
			p.OnPool(pool.Name, len(pool.Bases))
		}
		for _, base := range pool.Bases {
			passwords.AddAll(generate.ExpandBase(base, tails, p.config.Rules.MinLength, p.config.Rules.MaxLength))
			done++
			if p.OnProgress != nil {
				p.OnProgress(done, total)
			}
		}
		poolStats = append(poolStats, model.PoolStat{Name: pool.Name, Bases: len(pool.Bases)})
	}

	// 3. Build username combos and expand casing and leet variants.
	// The username list is sorted; the password list keeps pool order
	usernames := wordlist.NewSet()
	usernames.AddAll(generate.UsernameVariants(generate.UsernameCombos(profile)))

	result := &Result{
		Passwords: passwords.Values(),
		Usernames: usernames.Sorted(),
	}

	// 4. Describe the run
	rules := p.config.Rules
	rules.CurrentYear = currentYear
	result.Report = &model.RunReport{
		GeneratedAt: p.now().UTC(),
		CurrentYear: currentYear,
		Rules:       rules,
		Passwords: model.ListStats{
			File:     p.config.Output.PasswordFile,
			Total:    len(result.Passwords),
			Pools:    poolStats,
			Strength: p.scorer.Summarize(result.Passwords),
		},
		Usernames: model.ListStats{
			File:     p.config.Output.UsernameFile,
			Total:    len(result.Usernames),
			Strength: p.scorer.Summarize(result.Usernames),
		},
	}

	return result, nil
}

// WriteFiles writes both candidate lists. The writes are independent:
// a failure on one file never blocks the other
func (p *Pipeline) WriteFiles(result *Result) error {
	return errors.Join(
		wordlist.WriteFile(p.config.Output.PasswordFile, result.Passwords),
		wordlist.WriteFile(p.config.Output.UsernameFile, result.Usernames),
	)
}

// WriteReport writes the JSON run report to path
func (p *Pipeline) WriteReport(result *Result, path string) error {
	data, err := json.MarshalIndent(result.Report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderSummary prints the run summary to stdout
func (p *Pipeline) RenderSummary(result *Result) {
	r := result.Report

	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  Wordlist Run Summary")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Year anchor:  %d\n", r.CurrentYear)
	fmt.Printf("  Length:       %d-%d\n", r.Rules.MinLength, r.Rules.MaxLength)
	fmt.Println()
	fmt.Printf("  Passwords:    %d unique -> %s\n", r.Passwords.Total, r.Passwords.File)
	for _, pool := range r.Passwords.Pools {
		fmt.Printf("    %-14s %d base words\n", pool.Name, pool.Bases)
	}
	fmt.Printf("    strength:    %d weak / %d fair / %d strong\n",
		r.Passwords.Strength.Weak, r.Passwords.Strength.Fair, r.Passwords.Strength.Strong)
	fmt.Println()
	fmt.Printf("  Usernames:    %d unique -> %s\n", r.Usernames.Total, r.Usernames.File)
	fmt.Println()
}
