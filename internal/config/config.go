// Package config persists the player's choices across runs: whether
// they opted into stats tracking and the claim code that identifies
// them. Lives at the XDG config path (~/.config/unquote/config.json on
// Linux).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const configRelPath = "unquote/config.json"

// Config is everything remembered between sessions.
type Config struct {
	ClaimCode    string `json:"claim_code,omitempty"`
	StatsEnabled bool   `json:"stats_enabled"`
}

// Path returns where the config file lives, creating parent directories
// as needed.
func Path() (string, error) {
	return xdg.ConfigFile(configRelPath)
}

// Load reads the saved config. A missing file returns (nil, nil): the
// caller treats nil as "never ran before" and shows onboarding. A
// corrupt file is treated the same way rather than wedging startup.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("config: resolving path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil
	}
	return &cfg, nil
}

// Save writes the config atomically: temp file in the same directory,
// then rename.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("config: resolving path: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.json")
	if err != nil {
		return fmt.Errorf("config: creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("config: writing: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("config: closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("config: replacing %s: %w", path, err)
	}
	return nil
}
