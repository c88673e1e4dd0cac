// Package content provides the built-in sample data used in place of a backend.
package content

import (
	_ "embed"
	"fmt"

	"github.com/mmcdole/nefes/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Tips holds the short advisory texts shown on various screens
type Tips struct {
	Welcome        string `yaml:"welcome"`
	Dashboard      string `yaml:"dashboard"`
	Profile        string `yaml:"profile"`
	BeforeExercise string `yaml:"before_exercise"`
}

// Seed is the complete built-in corpus
type Seed struct {
	Categories []domain.Category   `yaml:"categories"`
	Exercises  []domain.Exercise   `yaml:"exercises"`
	Posts      []domain.BlogPost   `yaml:"posts"`
	FAQ        []domain.FAQItem    `yaml:"faq"`
	Profile    domain.ProfileStats `yaml:"profile"`
	Tips       Tips                `yaml:"tips"`
}

// Load parses and validates the embedded seed
func Load() (*Seed, error) {
	return Parse(seedYAML)
}

// Parse decodes a seed document and validates it
func Parse(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse content seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate checks that IDs are unique, titles are set and every exercise
// belongs to a declared category
func (s *Seed) Validate() error {
	declared := make(map[domain.Category]bool, len(s.Categories))
	for _, c := range s.Categories {
		if c == "" || c == domain.CategoryAll {
			return fmt.Errorf("invalid category %q", c)
		}
		if declared[c] {
			return fmt.Errorf("duplicate category %q", c)
		}
		declared[c] = true
	}

	seen := make(map[string]bool, len(s.Exercises))
	for _, e := range s.Exercises {
		if e.ID == "" || e.Title == "" {
			return fmt.Errorf("exercise %q: id and title are required", e.ID)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate exercise id %q", e.ID)
		}
		seen[e.ID] = true
		if !declared[e.Category] {
			return fmt.Errorf("exercise %q: undeclared category %q", e.ID, e.Category)
		}
	}

	seenPosts := make(map[string]bool, len(s.Posts))
	for _, p := range s.Posts {
		if p.ID == "" || p.Title == "" {
			return fmt.Errorf("post %q: id and title are required", p.ID)
		}
		if seenPosts[p.ID] {
			return fmt.Errorf("duplicate post id %q", p.ID)
		}
		seenPosts[p.ID] = true
	}

	return nil
}

// MustLoad is like Load but panics on error. The embedded seed is covered by tests.
func MustLoad() *Seed {
	seed, err := Load()
	if err != nil {
		panic(err)
	}
	return seed
}
