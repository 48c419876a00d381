package reliability

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of query limits, e.g.
//
//	max_paths: 10000
//	max_terms: 500000
//	workers: 8
//	keep_terms: false
//
// Zero values mean "unlimited" (or GOMAXPROCS workers).
type Config struct {
	MaxPaths  int  `yaml:"max_paths"`
	MaxTerms  int  `yaml:"max_terms"`
	Workers   int  `yaml:"workers"`
	KeepTerms bool `yaml:"keep_terms"`
}

// LoadConfig decodes a Config from r. Unknown keys and negative values are
// rejected; an empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("reliability: LoadConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports negative fields as ErrBadConfig.
func (c Config) Validate() error {
	for _, f := range []struct {
		key string
		val int
	}{
		{"max_paths", c.MaxPaths},
		{"max_terms", c.MaxTerms},
		{"workers", c.Workers},
	} {
		if f.val < 0 {
			return fmt.Errorf("reliability: %s=%d: %w", f.key, f.val, ErrBadConfig)
		}
	}

	return nil
}

// Options converts c into query options. c must be valid.
func (c Config) Options() []Option {
	opts := []Option{
		WithMaxPaths(c.MaxPaths),
		WithMaxTerms(c.MaxTerms),
		WithKeepTerms(c.KeepTerms),
	}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}

	return opts
}
