package config

import (
	"fmt"
	"strings"

	"spellchecker/pkg/options"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Checker.validate(); err != nil {
		return fmt.Errorf("checker: %w", err)
	}
	if strings.TrimSpace(c.Data.Dir) == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Data.Lexicon == "" {
		return fmt.Errorf("data.lexicon must not be empty")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr must be set when redis is enabled")
	}
	if c.Server.MaxBatch <= 0 {
		return fmt.Errorf("server.max_batch must be > 0 (got %d)", c.Server.MaxBatch)
	}
	return nil
}

func (c *CheckerConfig) validate() error {
	variant, err := options.ParseVariant(c.Variant)
	if err != nil {
		return err
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be within [0, 1] (got %v)", c.Threshold)
	}
	if c.MinWordLength < 0 {
		return fmt.Errorf("min_word_length must be >= 0 (got %d)", c.MinWordLength)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", c.Workers)
	}
	c.Variant = variant.String()
	return nil
}
