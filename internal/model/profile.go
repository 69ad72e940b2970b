package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the personal facts a wordlist run is seeded with.
// Every field is optional; an empty field simply contributes nothing.
type Profile struct {
	Names     []string `yaml:"names" json:"names,omitempty"`           // Target full names ("John Smith")
	Relatives []string `yaml:"relatives" json:"relatives,omitempty"`   // Family members and partners
	Others    []string `yaml:"others" json:"others,omitempty"`         // Friends, pets, colleagues
	Brands    []string `yaml:"brands" json:"brands,omitempty"`         // Favorite brands
	Shows     []string `yaml:"shows" json:"shows,omitempty"`           // Favorite shows and movies
	Actors    []string `yaml:"actors" json:"actors,omitempty"`         // Favorite actors and musicians
	Hobbies   []string `yaml:"hobbies" json:"hobbies,omitempty"`       // Hobbies and sports teams
	Dates     []string `yaml:"dates" json:"dates,omitempty"`           // Significant dates as digit strings ("0714")
	Phones    []string `yaml:"phones" json:"phones,omitempty"`         // Phone numbers in any format
	PINs      []string `yaml:"pins" json:"pins,omitempty"`             // Known PINs and favorite symbols, mixed
	Extra     []string `yaml:"extra" json:"extra,omitempty"`           // Extra base words used as-is
	BirthYear int      `yaml:"birth_year" json:"birth_year,omitempty"` // Target birth year (0 = unknown)
}

// AllNames returns every person name in priority order: target first,
// then relatives, then other associated people.
func (p *Profile) AllNames() []string {
	out := make([]string, 0, len(p.Names)+len(p.Relatives)+len(p.Others))
	out = append(out, p.Names...)
	out = append(out, p.Relatives...)
	out = append(out, p.Others...)
	return out
}

// AllTitles returns every interest token: brands, shows, actors, hobbies.
func (p *Profile) AllTitles() []string {
	out := make([]string, 0, len(p.Brands)+len(p.Shows)+len(p.Actors)+len(p.Hobbies))
	out = append(out, p.Brands...)
	out = append(out, p.Shows...)
	out = append(out, p.Actors...)
	out = append(out, p.Hobbies...)
	return out
}

// IsEmpty reports whether the profile contains no usable facts at all.
func (p *Profile) IsEmpty() bool {
	return len(p.AllNames()) == 0 &&
		len(p.AllTitles()) == 0 &&
		len(p.Dates) == 0 &&
		len(p.Phones) == 0 &&
		len(p.PINs) == 0 &&
		len(p.Extra) == 0 &&
		p.BirthYear == 0
}

// LoadProfile reads a profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	return &p, nil
}

// Save writes the profile to a YAML file, creating or overwriting it.
func (p *Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	return nil
}
