package model

import "time"

// Config holds all configuration for wordbergler commands
type Config struct {
	Output       OutputConfig      `yaml:"output" json:"output"`
	Rules        RulesConfig       `yaml:"rules" json:"rules"`
	HTTP         HTTPConfig        `yaml:"http" json:"http"`
	Cache        CacheConfig       `yaml:"cache" json:"cache"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" json:"rate_limiting"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Harvest      HarvestConfig     `yaml:"harvest" json:"harvest"`
	LLM          LLMConfig         `yaml:"llm" json:"llm"`
}

// OutputConfig controls where and how results are written
type OutputConfig struct {
	PasswordFile string `yaml:"password_file" json:"password_file"` // Password candidate list path
	UsernameFile string `yaml:"username_file" json:"username_file"` // Username candidate list path
	ReportFile   string `yaml:"report_file" json:"report_file"`     // Optional JSON run report path
	Progress     bool   `yaml:"progress" json:"progress"`           // Show a progress bar during generation
	Verbose      bool   `yaml:"verbose" json:"verbose"`             // Chatter on stderr
}

// RulesConfig controls the candidate transformation rules
type RulesConfig struct {
	MinLength   int `yaml:"min_length" json:"min_length"`     // Shortest password candidate kept
	MaxLength   int `yaml:"max_length" json:"max_length"`     // Longest password candidate kept
	YearFloor   int `yaml:"year_floor" json:"year_floor"`     // Oldest year appended when birth year is unknown
	CurrentYear int `yaml:"current_year" json:"current_year"` // Anchor for year ranges (0 = wall clock)
}

// HTTPConfig controls harvest fetching behavior
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" json:"no_proxy"`
}

// CacheConfig controls caching of fetched pages
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"` // Disk cache directory ("" = ~/.wordbergler/cache)
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// RateLimitConfig controls politeness toward harvested hosts
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// ConcurrencyConfig controls parallel harvest fetching
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// HarvestConfig controls word extraction from fetched pages
type HarvestConfig struct {
	MinWordLength   int  `yaml:"min_word_length" json:"min_word_length"`       // Shortest word kept
	MaxWordsPerPage int  `yaml:"max_words_per_page" json:"max_words_per_page"` // Cap per page (0 = unlimited)
	RespectRobots   bool `yaml:"respect_robots" json:"respect_robots"`         // Honor robots.txt
}

// LLMConfig controls optional seed-word suggestion
type LLMConfig struct {
	Provider       string        `yaml:"provider" json:"provider"` // "openai", "anthropic", "ollama", "" = disabled
	Model          string        `yaml:"model" json:"model"`
	APIKey         string        `yaml:"-" json:"-"` // From environment only, never serialized
	BaseURL        string        `yaml:"base_url" json:"base_url"`
	MaxSuggestions int           `yaml:"max_suggestions" json:"max_suggestions"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			PasswordFile: "custom_wordlist.txt",
			UsernameFile: "likely_usernames.txt",
			Progress:     true,
		},
		Rules: RulesConfig{
			MinLength: 6,
			MaxLength: 16,
			YearFloor: 1980,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "WordBergler/0.2 (+https://github.com/aberg/wordbergler)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         4,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Harvest: HarvestConfig{
			MinWordLength:   4,
			MaxWordsPerPage: 500,
			RespectRobots:   true,
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			MaxSuggestions: 30,
			Timeout:        60 * time.Second,
		},
	}
}
