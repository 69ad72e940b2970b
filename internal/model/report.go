package model

import "time"

// RunReport is the machine-readable summary of a generation run.
// It describes what was produced, never the candidates themselves.
type RunReport struct {
	GeneratedAt time.Time   `json:"generated_at"` // When the run finished
	CurrentYear int         `json:"current_year"` // Year anchor used for numeric tails
	Rules       RulesConfig `json:"rules"`        // Transformation rules in effect

	Passwords ListStats `json:"passwords"` // Password list breakdown
	Usernames ListStats `json:"usernames"` // Username list breakdown
}

// ListStats describes one emitted candidate list
type ListStats struct {
	File     string     `json:"file"`            // Output path the list was written to
	Total    int        `json:"total"`           // Unique candidates written
	Pools    []PoolStat `json:"pools,omitempty"` // Per-pool base word counts, in priority order
	Strength Strength   `json:"strength"`        // Guessability distribution
}

// PoolStat counts the base words contributed by one candidate pool
type PoolStat struct {
	Name  string `json:"name"`  // Pool name (e.g., "last-names")
	Bases int    `json:"bases"` // Base words the pool contributed
}

// Strength is a guessability distribution over a candidate list.
// It is descriptive only; candidates are never filtered by strength.
type Strength struct {
	Weak   int `json:"weak"`
	Fair   int `json:"fair"`
	Strong int `json:"strong"`
}

// Suggestions contains seed words proposed by an LLM provider.
// Suggestions never flow into generation implicitly; the operator
// reviews them and merges the keepers into a profile.
type Suggestions struct {
	Provider string   `json:"provider"`           // openai, anthropic, ollama
	Model    string   `json:"model"`              // Model name
	Words    []string `json:"words"`              // Accepted single-token suggestions
	Warnings []string `json:"warnings,omitempty"` // Lines dropped for breaking output discipline
}
