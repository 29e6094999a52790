package weasel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultCharSet, cfg.Weasel.CharSet)
	assert.Equal(t, 100, cfg.Weasel.Iterations)
	assert.Equal(t, 5, cfg.Weasel.MutationRate)
	assert.Equal(t, 1, cfg.Runtime.Workers)
	assert.Equal(t, int64(0), cfg.Runtime.Seed)
	assert.Empty(t, cfg.Weasel.Phrase, "phrase has no default; the caller must set it")
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Weasel.Phrase = "Hello!"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty phrase", func(c *Config) { c.Weasel.Phrase = "" }},
		{"empty char set", func(c *Config) { c.Weasel.CharSet = "" }},
		{"mutation rate too low", func(c *Config) { c.Weasel.MutationRate = 0 }},
		{"mutation rate too high", func(c *Config) { c.Weasel.MutationRate = 101 }},
		{"negative mutation rate", func(c *Config) { c.Weasel.MutationRate = -3 }},
		{"zero iterations", func(c *Config) { c.Weasel.Iterations = 0 }},
		{"negative iterations", func(c *Config) { c.Weasel.Iterations = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestConfigValidateBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weasel.Phrase = "GO"

	cfg.Weasel.MutationRate = 1
	assert.NoError(t, cfg.Validate())
	cfg.Weasel.MutationRate = 100
	assert.NoError(t, cfg.Validate())
	cfg.Weasel.Iterations = 1
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weasel-config")
	content := `
[Weasel]
phrase = Hello, World!
char_set = HelWord, !
iterations = 250
mutation_rate = 10

[Runtime]
workers = 4
seed = 99
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Hello, World!", cfg.Weasel.Phrase)
	assert.Equal(t, "HelWord, !", cfg.Weasel.CharSet)
	assert.Equal(t, 250, cfg.Weasel.Iterations)
	assert.Equal(t, 10, cfg.Weasel.MutationRate)
	assert.Equal(t, 4, cfg.Runtime.Workers)
	assert.Equal(t, int64(99), cfg.Runtime.Seed)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	// A file that only sets the phrase keeps every other default.
	path := filepath.Join(t.TempDir(), "weasel-config")
	require.NoError(t, os.WriteFile(path, []byte("[Weasel]\nphrase = GO\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "GO", cfg.Weasel.Phrase)
	assert.Equal(t, DefaultCharSet, cfg.Weasel.CharSet)
	assert.Equal(t, 100, cfg.Weasel.Iterations)
	assert.Equal(t, 5, cfg.Weasel.MutationRate)
	assert.Equal(t, 1, cfg.Runtime.Workers)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
