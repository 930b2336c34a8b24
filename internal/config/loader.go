package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RulesFile is the file name looked up in the config directories.
const RulesFile = "rules.yaml"

// LoadPacman loads Pacman rules configuration.
// Search order: customPath -> ~/.pacman/configs/rules.yaml -> ./configs/rules.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadPacman(customPath string) (PacmanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePacman(data, customPath)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or broken files fall through to the next location.
	for _, p := range []string{userConfigPath(RulesFile), filepath.Join("configs", RulesFile)} {
		if p == "" {
			continue
		}
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := parsePacman(data, p); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parsePacman(defaultPacmanYAML, "embedded defaults")
	if err != nil {
		return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePacman decodes data over the defaults, rejecting unknown keys.
func parsePacman(data []byte, source string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return PacmanConfig{}, err
	}
	cfg.Source = source
	return cfg, nil
}

// Marshal renders the config as YAML, the format LoadPacman reads.
func Marshal(cfg PacmanConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", "configs", filename)
}
