package config

import (
	"fmt"
	"path/filepath"
	"time"

	"spellchecker/pkg/options"
)

// Config is the root application configuration.
type Config struct {
	Checker CheckerConfig `yaml:"checker"`
	Data    DataConfig    `yaml:"data"`
	Redis   RedisConfig   `yaml:"redis"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// CheckerConfig holds spell checker parameters.
type CheckerConfig struct {
	Variant         string  `yaml:"variant"          env:"CHECKER_VARIANT"          env-default:"ngram"`
	Threshold       float64 `yaml:"threshold"        env:"CHECKER_THRESHOLD"        env-default:"0"`
	SuffixCheck     bool    `yaml:"suffix_check"     env:"CHECKER_SUFFIX_CHECK"     env-default:"true"`
	RootNGram       bool    `yaml:"root_ngram"       env:"CHECKER_ROOT_NGRAM"       env-default:"true"`
	MinWordLength   int     `yaml:"min_word_length"  env:"CHECKER_MIN_WORD_LENGTH"  env-default:"4"`
	Domain          string  `yaml:"domain"           env:"CHECKER_DOMAIN"`
	RandomSelection bool    `yaml:"random_selection" env:"CHECKER_RANDOM_SELECTION" env-default:"false"`
	Seed            uint64  `yaml:"seed"             env:"CHECKER_SEED"             env-default:"1"`
	Workers         int     `yaml:"workers"          env:"CHECKER_WORKERS"          env-default:"4"`
}

// DataConfig locates the lexicon, the bigram model and the correction tables.
type DataConfig struct {
	Dir     string `yaml:"dir"     env:"DATA_DIR"     env-default:"./data"`
	Lexicon string `yaml:"lexicon" env:"DATA_LEXICON" env-default:"lexicon.txt"`
	NGram   string `yaml:"ngram"   env:"DATA_NGRAM"   env-default:"bigrams.txt"`
}

// RedisConfig holds custom dictionary store settings.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"  env:"REDIS_ENABLED"  env-default:"false"`
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBatch        int           `yaml:"max_batch"        env:"SERVER_MAX_BATCH"        env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Address returns host:port for net/http.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LexiconPath returns the full path of the lexicon file.
func (d DataConfig) LexiconPath() string { return filepath.Join(d.Dir, d.Lexicon) }

// NGramPath returns the full path of the bigram count file.
func (d DataConfig) NGramPath() string { return filepath.Join(d.Dir, d.NGram) }

// Parameters converts the section into checker parameters. The variant is
// assumed valid; Validate rejects unknown names.
func (c CheckerConfig) Parameters() options.Parameters {
	variant, err := options.ParseVariant(c.Variant)
	if err != nil {
		variant = options.DefaultParameters.Variant
	}
	opts := []options.Options{
		options.WithVariant(variant),
		options.WithThreshold(c.Threshold),
		options.WithSuffixCheck(c.SuffixCheck),
		options.WithRootNGram(c.RootNGram),
		options.WithMinWordLength(c.MinWordLength),
		options.WithDomain(c.Domain),
	}
	if c.RandomSelection {
		opts = append(opts, options.WithRandomSelection(c.Seed))
	}
	return options.New(opts...)
}
