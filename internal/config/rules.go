package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the heuristic tuning constants. They are the main lever for
// trading precision against recall, so they live outside the code.
type Rules struct {
	Citation CitationRules `yaml:"citation"`
	Index    IndexRules    `yaml:"index"`
	Bench    BenchRules    `yaml:"bench"`
}

type CitationRules struct {
	MinSignals   int `yaml:"min_signals"`
	ShortSignals int `yaml:"short_signals"`
	ShortLength  int `yaml:"short_length"`
}

type IndexRules struct {
	MaxItems     int `yaml:"max_items"`
	ScanLimit    int `yaml:"scan_limit"`
	HeaderMaxLen int `yaml:"header_max_len"`
}

type BenchRules struct {
	MaxJudges int `yaml:"max_judges"`
}

// DefaultRules returns the built-in tuning.
func DefaultRules() Rules {
	return Rules{
		Citation: CitationRules{MinSignals: 2, ShortSignals: 1, ShortLength: 200},
		Index:    IndexRules{MaxItems: 25, ScanLimit: 30, HeaderMaxLen: 25},
		Bench:    BenchRules{MaxJudges: 3},
	}
}

// LoadRules reads a YAML rules file over the defaults. Keys absent from
// the file keep their default value; an empty path returns the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}

// Validate rejects non-positive values.
func (r Rules) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"citation.min_signals", r.Citation.MinSignals},
		{"citation.short_signals", r.Citation.ShortSignals},
		{"citation.short_length", r.Citation.ShortLength},
		{"index.max_items", r.Index.MaxItems},
		{"index.scan_limit", r.Index.ScanLimit},
		{"index.header_max_len", r.Index.HeaderMaxLen},
		{"bench.max_judges", r.Bench.MaxJudges},
	}
	for _, c := range checks {
		if c.v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", c.name, c.v)
		}
	}
	return nil
}
