package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellchecker/pkg/options"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
checker:
  variant: "context"
  threshold: 0.1
  min_word_length: 3
  domain: "hukuk"
  random_selection: true
  seed: 99
  workers: 8

data:
  dir: "/srv/spell"
  lexicon: "tr.txt"
  ngram: "tr_bigrams.txt"

redis:
  enabled: true
  addr: "redis:6379"
  db: 2

server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  max_batch: 20

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "context", cfg.Checker.Variant)
	assert.Equal(t, 0.1, cfg.Checker.Threshold)
	assert.True(t, cfg.Checker.SuffixCheck)
	assert.Equal(t, 8, cfg.Checker.Workers)
	assert.Equal(t, "/srv/spell/tr.txt", cfg.Data.LexiconPath())
	assert.Equal(t, "/srv/spell/tr_bigrams.txt", cfg.Data.NGramPath())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)

	params := cfg.Checker.Parameters()
	assert.Equal(t, options.ContextBased, params.Variant)
	assert.Equal(t, 3, params.MinWordLength)
	assert.Equal(t, "hukuk", params.Domain)
	assert.True(t, params.RandomSelection)
	assert.Equal(t, uint64(99), params.Seed)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("CHECKER_VARIANT", "trie")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "trie", cfg.Checker.Variant)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ngram", cfg.Checker.Variant)
	assert.True(t, cfg.Checker.SuffixCheck)
	assert.True(t, cfg.Checker.RootNGram)
	assert.Equal(t, 4, cfg.Checker.MinWordLength)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, options.New(), cfg.Checker.Parameters())
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Checker: CheckerConfig{Variant: "ngram", MinWordLength: 4, Workers: 2},
			Data:    DataConfig{Dir: "./data", Lexicon: "lexicon.txt"},
			Server:  ServerConfig{MaxBatch: 10},
		}
	}
	base := valid()
	require.NoError(t, base.Validate())

	tests := map[string]func(c *Config){
		"unknown variant":    func(c *Config) { c.Checker.Variant = "neural" },
		"threshold above 1":  func(c *Config) { c.Checker.Threshold = 1.5 },
		"negative threshold": func(c *Config) { c.Checker.Threshold = -0.1 },
		"negative length":    func(c *Config) { c.Checker.MinWordLength = -1 },
		"no workers":         func(c *Config) { c.Checker.Workers = 0 },
		"empty data dir":     func(c *Config) { c.Data.Dir = " " },
		"empty lexicon":      func(c *Config) { c.Data.Lexicon = "" },
		"redis without addr": func(c *Config) { c.Redis.Enabled = true },
		"no batch":           func(c *Config) { c.Server.MaxBatch = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestValidate_NormalisesVariant(t *testing.T) {
	c := Config{
		Checker: CheckerConfig{Variant: " Trie ", Workers: 1},
		Data:    DataConfig{Dir: "d", Lexicon: "l"},
		Server:  ServerConfig{MaxBatch: 1},
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, "trie", c.Checker.Variant)
}
