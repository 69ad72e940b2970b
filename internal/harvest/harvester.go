package harvest

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aberg/wordbergler/internal/cache"
	"github.com/aberg/wordbergler/internal/model"
	"github.com/aberg/wordbergler/internal/util"
	"github.com/aberg/wordbergler/internal/worker"
)

// Harvester fetches pages and collects candidate seed words from them.
// Fetches run on a bounded pool; per-host rate limits, robots.txt rules
// and the page cache all sit between a URL and the network.
type Harvester struct {
	fetcher   *Fetcher
	extractor *WordExtractor
	limiter   *worker.HostLimiter
	robots    *util.RobotsChecker
	cache     cache.Cache
	pool      *worker.Pool
}

// NewHarvester wires a harvester from configuration
func NewHarvester(cfg *model.Config) *Harvester {
	h := &Harvester{
		fetcher:   NewFetcher(cfg.HTTP),
		extractor: NewWordExtractor(cfg.Harvest.MinWordLength, cfg.Harvest.MaxWordsPerPage),
		limiter:   worker.NewHostLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		pool:      worker.NewPool(cfg.Concurrency.Workers),
	}

	if cfg.Harvest.RespectRobots {
		h.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	if cfg.Cache.Enabled {
		h.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return h
}

// PageResult is the outcome for one URL
type PageResult struct {
	URL       string
	Words     []string
	FromCache bool
	Err       error
}

// GetError implements worker.Result
func (r *PageResult) GetError() error {
	return r.Err
}

// Result aggregates a harvest over multiple URLs. Words holds the merged
// unique words of all pages, ordered by first occurrence.
type Result struct {
	Pages []PageResult
	Words []string
}

type fetchJob struct {
	harvester *Harvester
	url       string
}

// Execute fetches one page and extracts its words
func (j *fetchJob) Execute(ctx context.Context) worker.Result {
	words, fromCache, err := j.harvester.page(ctx, j.url)
	return &PageResult{
		URL:       j.url,
		Words:     words,
		FromCache: fromCache,
		Err:       err,
	}
}

// Run harvests all URLs. Page results and the merged word list keep the
// submission order regardless of which fetch finishes first.
func (h *Harvester) Run(ctx context.Context, urls []string) *Result {
	jobs := make([]worker.Job, len(urls))
	for i, u := range urls {
		jobs[i] = &fetchJob{harvester: h, url: u}
	}

	results := h.pool.Run(ctx, jobs)

	run := &Result{}
	seen := make(map[string]struct{})
	for i, res := range results {
		page, ok := res.(*PageResult)
		if !ok {
			page = &PageResult{URL: urls[i], Err: res.GetError()}
		}
		run.Pages = append(run.Pages, *page)

		for _, w := range page.Words {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			run.Words = append(run.Words, w)
		}
	}
	return run
}

// page returns the words of a single page, consulting the cache and
// robots rules before going to the network.
func (h *Harvester) page(ctx context.Context, rawURL string) ([]string, bool, error) {
	key := cache.Key(rawURL)

	if h.cache != nil {
		if body, found := h.cache.Get(key); found {
			return h.extractor.Extract(string(body)), true, nil
		}
	}

	var crawlDelay time.Duration
	if h.robots != nil {
		allowed, delay, err := h.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, false, err
		}
		if !allowed {
			return nil, false, fmt.Errorf("disallowed by robots.txt")
		}
		crawlDelay = delay
	}

	if err := h.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, false, err
	}

	result, err := h.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, false, err
	}

	if h.cache != nil {
		_ = h.cache.Set(key, []byte(result.Body), 0)
	}

	return h.extractor.Extract(result.Body), false, nil
}

// ReadURLFile reads harvest targets from a file, one URL per line.
// Blank lines and # comments are skipped; duplicates collapse to their
// first occurrence.
func ReadURLFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
