package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"quiz-widget/internal/opentdb"
)

type Config struct {
	Env      string `yaml:"env"`
	Provider struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"provider"`
	Quiz struct {
		Amount     int    `yaml:"amount"`
		Difficulty string `yaml:"difficulty"`
		Type       string `yaml:"type"`
		Category   int    `yaml:"category"`
	} `yaml:"quiz"`
}

// Default returns the fixed widget parameters: 5 easy multiple-choice
// questions from the public OpenTriviaDB endpoint.
func Default() Config {
	cfg := Config{}
	cfg.Env = "local"
	cfg.Provider.Timeout = "10s"
	cfg.Quiz.Amount = opentdb.DefaultAmount
	cfg.Quiz.Difficulty = opentdb.DefaultDifficulty
	cfg.Quiz.Type = opentdb.DefaultType
	return cfg
}

// Load reads YAML config from path, layering it over the defaults. An empty
// path returns the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// TimeoutDuration parses a duration string or returns the fallback if the
// value is empty or invalid.
func TimeoutDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
