package weasel

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// DefaultCharSet is the character pool used when none is configured:
// uppercase and lowercase letters, space, and basic punctuation.
const DefaultCharSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz!?."

// Config stores the configuration parameters for a Weasel run.
type Config struct {
	Weasel  WeaselConfig
	Runtime RuntimeConfig
}

// WeaselConfig holds the parameters of the algorithm itself.
type WeaselConfig struct {
	// Phrase is the target the run converges on. Required, non-empty.
	Phrase string `ini:"phrase"`
	// CharSet is the pool every generated or mutated character is drawn
	// from. Must be non-empty; it should contain every character of the
	// phrase, otherwise the run can never converge.
	CharSet string `ini:"char_set"`
	// Iterations is the number of trial mutations per generation, >= 1.
	Iterations int `ini:"iterations"`
	// MutationRate is the percent chance each character mutates, in [1,100].
	MutationRate int `ini:"mutation_rate"`
}

// RuntimeConfig holds parameters of the run's execution environment rather
// than the algorithm.
type RuntimeConfig struct {
	// Workers is the number of goroutines evaluating trial mutations.
	// Values <= 1 select the serial path.
	Workers int `ini:"workers"`
	// Seed seeds the run's random source; 0 picks a random seed.
	Seed int64 `ini:"seed"`
}

// DefaultConfig returns a config with the documented defaults. The phrase is
// left empty and must be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		Weasel: WeaselConfig{
			CharSet:      DefaultCharSet,
			Iterations:   100,
			MutationRate: 5,
		},
		Runtime: RuntimeConfig{
			Workers: 1,
			Seed:    0, // 0 = random
		},
	}
}

// LoadConfig loads configuration parameters from an INI file with sections
// [Weasel] and [Runtime]. Keys absent from the file keep their defaults.
// The result is not validated; call Validate after any further overrides.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true, // Allow # comments starting with # or ;
		UnescapeValueCommentSymbols: true, // If # or ; appear in value, treat as value
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := DefaultConfig()

	if err := cfg.Section("Weasel").MapTo(&config.Weasel); err != nil {
		return nil, fmt.Errorf("failed to map [Weasel] section: %w", err)
	}
	if err := cfg.Section("Runtime").MapTo(&config.Runtime); err != nil {
		return nil, fmt.Errorf("failed to map [Runtime] section: %w", err)
	}

	// MapTo writes zero values for keys that are present but empty; restore
	// the defaults for those so an empty key behaves like an absent one.
	if config.Weasel.CharSet == "" {
		config.Weasel.CharSet = DefaultCharSet
	}
	if config.Weasel.Iterations == 0 {
		config.Weasel.Iterations = 100
	}
	if config.Weasel.MutationRate == 0 {
		config.Weasel.MutationRate = 5
	}
	if config.Runtime.Workers == 0 {
		config.Runtime.Workers = 1
	}

	return config, nil
}

// Validate checks every parameter against its documented constraint.
// All violations are reported as ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Weasel.Phrase == "" {
		return fmt.Errorf("%w: phrase must not be empty", ErrInvalidConfig)
	}
	if c.Weasel.CharSet == "" {
		return fmt.Errorf("%w: char_set must not be empty", ErrInvalidConfig)
	}
	if c.Weasel.MutationRate < 1 || c.Weasel.MutationRate > 100 {
		return fmt.Errorf("%w: mutation_rate should be within [1-100], not %d",
			ErrInvalidConfig, c.Weasel.MutationRate)
	}
	if c.Weasel.Iterations < 1 {
		return fmt.Errorf("%w: iterations should be >= 1, not %d",
			ErrInvalidConfig, c.Weasel.Iterations)
	}
	return nil
}
