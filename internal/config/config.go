package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Planning      PlanningConfig `toml:"planning"`
	Notifications NotifyConfig   `toml:"notifications"`
	AI            AIConfig       `toml:"ai"`
}

type PlanningConfig struct {
	IterationsPerQuarter int `toml:"iterations_per_quarter"`
	IterationWeeks       int `toml:"iteration_weeks"`
}

type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
	// Notify only at or above this severity: low, medium, high, critical.
	MinSeverity string `toml:"min_severity"`
}

type AIConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

func DefaultConfig() Config {
	return Config{
		Planning: PlanningConfig{
			IterationsPerQuarter: 6,
			IterationWeeks:       2,
		},
		Notifications: NotifyConfig{
			Enabled:     true,
			MinSeverity: "critical",
		},
		AI: AIConfig{
			Model: "gpt-4o-mini",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "planpulse"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("PLANPULSE_AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// Save writes the config back to disk, creating the directory if
// needed.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	out, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}
