package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nikbrunner/domsel/internal/model"
)

var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration written as a string ("5s", "1m30s") in JSON.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Seed is an initial entry as written in the config file.
type Seed struct {
	URL       string `json:"url"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Config holds application configuration.
type Config struct {
	SyncDelay     Duration `json:"syncDelay"`
	FailureRate   float64  `json:"failureRate"`
	ConfirmDelete *bool    `json:"confirmDelete"`
	LogLevel      string   `json:"logLevel"`
	Seeds         []Seed   `json:"seeds,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	confirm := true
	return Config{
		SyncDelay:     Duration(5 * time.Second),
		FailureRate:   0,
		ConfirmDelete: &confirm,
		LogLevel:      "info",
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.SyncDelay <= 0 {
		config.SyncDelay = defaults.SyncDelay
	}
	if config.ConfirmDelete == nil {
		config.ConfirmDelete = defaults.ConfirmDelete
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks ranges and seed entries.
func (c *Config) Validate() error {
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("%w: failureRate %v not in [0,1]", ErrInvalidConfig, c.FailureRate)
	}
	for i, s := range c.Seeds {
		if _, err := model.NormalizeURL(s.URL); err != nil {
			return fmt.Errorf("%w: seed %d: %v", ErrInvalidConfig, i, err)
		}
		if s.Status != "" {
			if _, err := model.ParseStatus(s.Status); err != nil {
				return fmt.Errorf("%w: seed %d: %v", ErrInvalidConfig, i, err)
			}
		}
	}
	return nil
}

// ShouldConfirmDelete reports whether deletes go through the confirm dialog.
func (c *Config) ShouldConfirmDelete() bool {
	return c.ConfirmDelete == nil || *c.ConfirmDelete
}

// SeedEntries converts configured seeds to entries with ids 1..n.
// Returns model.DefaultSeed() when no seeds are configured.
func (c *Config) SeedEntries() []model.Entry {
	if len(c.Seeds) == 0 {
		return model.DefaultSeed()
	}

	entries := make([]model.Entry, 0, len(c.Seeds))
	for i, s := range c.Seeds {
		url, _ := model.NormalizeURL(s.URL)
		status := model.StatusPending
		if parsed, err := model.ParseStatus(s.Status); err == nil {
			status = parsed
		}
		entries = append(entries, model.Entry{
			ID:        int64(i + 1),
			URL:       url,
			Status:    status,
			Timestamp: s.Timestamp,
		})
	}
	return entries
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/domsel/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "domsel", "config.json"), nil
}
