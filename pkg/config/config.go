// Package config loads the declarative pipeline configuration: which raw
// sources to merge, in which priority order, and where the output goes.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
	"github.com/roniwahyu/multibahasa/pkg/source"
)

// Source declares one raw input table. Columns maps raw CSV header names to
// canonical field names (english, indonesian_colloquial, javanese, sundanese,
// formal_indonesian). Lower Priority values are processed first, so earlier
// sources win fields on overlap.
type Source struct {
	Name           string            `yaml:"name"`
	Path           string            `yaml:"path"`
	Priority       int               `yaml:"priority"`
	Columns        map[string]string `yaml:"columns"`
	CategoryColumn string            `yaml:"category_column"`
}

// Output declares where the finished table is persisted.
type Output struct {
	CSV string `yaml:"csv" env:"STOPWORDGEN_OUT" env-default:"multilingual_stopwords.csv"`
	// DB, when non-empty, additionally persists the table into a SQLite
	// store for downstream lookup consumers.
	DB string `yaml:"db" env:"STOPWORDGEN_DB"`
}

// Translate holds enrichment settings.
type Translate struct {
	Enabled   bool `yaml:"enabled" env:"STOPWORDGEN_TRANSLATE" env-default:"true"`
	MaxRunes  int  `yaml:"max_runes" env-default:"50"`
	MaxTokens int  `yaml:"max_tokens" env-default:"5"`
}

// Config is the whole pipeline configuration.
type Config struct {
	Sources   []Source  `yaml:"sources"`
	Output    Output    `yaml:"output"`
	Translate Translate `yaml:"translate"`
}

// Load reads configuration from a YAML file with environment overrides.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources declared")
	}
	if c.Output.CSV == "" {
		return fmt.Errorf("output.csv must not be empty")
	}

	seen := make(map[int]string, len(c.Sources))
	for _, s := range c.Sources {
		if s.Name == "" {
			return fmt.Errorf("source with empty name")
		}
		if s.Path == "" {
			return fmt.Errorf("source %s: empty path", s.Name)
		}
		if len(s.Columns) == 0 {
			return fmt.Errorf("source %s: no column mapping", s.Name)
		}
		for col, field := range s.Columns {
			if _, ok := lexicon.FieldByName(field); !ok {
				return fmt.Errorf("source %s: column %q maps to unknown field %q", s.Name, col, field)
			}
		}
		if prev, dup := seen[s.Priority]; dup {
			return fmt.Errorf("sources %s and %s share priority %d", prev, s.Name, s.Priority)
		}
		seen[s.Priority] = s.Name
	}
	return nil
}

// SourcesByPriority returns the declared sources sorted by ascending
// priority rank, i.e. in processing order.
func (c *Config) SourcesByPriority() []Source {
	out := append([]Source(nil), c.Sources...)
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// Mapping converts the declared column mapping into the normalizer's form.
// Validate must have accepted the config first.
func (s Source) Mapping() source.Mapping {
	m := make(source.Mapping, len(s.Columns))
	for col, field := range s.Columns {
		if f, ok := lexicon.FieldByName(field); ok {
			m[col] = f
		}
	}
	return m
}
