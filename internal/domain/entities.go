package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// Category groups exercises (e.g. breathing, warm-up)
type Category string

// CategoryAll is the sentinel selection meaning "no filter"
const CategoryAll Category = "All"

// Exercise is a single entry of the exercise catalog
type Exercise struct {
	ID       string   `yaml:"id"`       // Unique identifier
	Title    string   `yaml:"title"`    // Display title
	Category Category `yaml:"category"` // One of the declared categories
	Duration string   `yaml:"duration"` // Duration label, e.g. "5 dk"
	Accent   string   `yaml:"accent"`   // Hex colour used for badges
	Steps    []string `yaml:"steps"`    // How-to steps for the detail screen
}

// Minutes returns the leading integer of the duration label (0 if none)
func (e Exercise) Minutes() int {
	label := strings.TrimSpace(e.Duration)
	end := strings.IndexFunc(label, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(label)
	}
	n, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return n
}

// CleanSteps returns the steps with any leading "N." numbering removed
func (e Exercise) CleanSteps() []string {
	steps := make([]string, len(e.Steps))
	for i, step := range e.Steps {
		steps[i] = stripStepNumber(step)
	}
	return steps
}

func stripStepNumber(step string) string {
	trimmed := strings.TrimLeftFunc(step, unicode.IsDigit)
	if len(trimmed) == len(step) || !strings.HasPrefix(trimmed, ".") {
		return step
	}
	return strings.TrimLeftFunc(trimmed[1:], unicode.IsSpace)
}

// GetID implements ListItem
func (e *Exercise) GetID() string { return e.ID }

// GetTitle implements ListItem
func (e *Exercise) GetTitle() string { return e.Title }

// GetDescription implements ListItem
func (e *Exercise) GetDescription() string {
	return string(e.Category) + " · " + e.Duration
}

// BlogPost is an educational article
type BlogPost struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Content  string `yaml:"content"` // Paragraphs separated by blank lines
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
	ReadTime string `yaml:"read_time"`
	Category string `yaml:"category"`
	Accent   string `yaml:"accent"`
}

// Paragraphs splits the content on blank lines, dropping empty paragraphs
func (p BlogPost) Paragraphs() []string {
	var out []string
	for _, para := range strings.Split(p.Content, "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			out = append(out, para)
		}
	}
	return out
}

// GetID implements ListItem
func (p *BlogPost) GetID() string { return p.ID }

// GetTitle implements ListItem
func (p *BlogPost) GetTitle() string { return p.Title }

// GetDescription implements ListItem
func (p *BlogPost) GetDescription() string {
	return p.Author + " · " + p.ReadTime
}

// FAQItem is a single support question with its answer
type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}
