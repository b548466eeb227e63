package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Config controls the limits and policies of the front end. The zero value
// of a limit means unbounded.
type Config struct {
	// MaxTokens stops scanning once this many tokens have been produced.
	MaxTokens int `toml:"max_tokens"`

	// MaxDepth bounds how deeply expressions may nest while parsing.
	MaxDepth int `toml:"max_depth"`

	// StrictNumbers only accepts whitespace, ',', ')' or ';' right after a
	// number literal. Otherwise any character that cannot continue the
	// literal (a letter, '_' or '.') is rejected and the rest are accepted.
	StrictNumbers bool `toml:"strict_numbers"`

	LogLevel string `toml:"log_level"`
	Color    bool   `toml:"color"`

	// Logger overrides the logger built from LogLevel.
	Logger *logrus.Logger `toml:"-"`
}

const (
	defaultMaxTokens = 1 << 20
	defaultMaxDepth  = 256
)

var errNegativeLimit = errors.New("limit cannot be negative")

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		MaxTokens: defaultMaxTokens,
		MaxDepth:  defaultMaxDepth,
		LogLevel:  logrus.WarnLevel.String(),
		Color:     true,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks limits and the log level.
func (c Config) Validate() error {
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens: %w", errNegativeLimit)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth: %w", errNegativeLimit)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

func (c Config) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}
