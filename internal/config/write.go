// write.go serializes a kitchen config back to disk, used by
// "lasagna-timer config init".
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Marshal encodes cfg in the format implied by path's extension.
// JSON output is indented with two spaces and ends with a newline.
func Marshal(path string, cfg *Config) ([]byte, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	switch f {
	case formatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config YAML: %w", err)
		}
		return data, nil
	}
}

// WriteConfig writes cfg to path, creating parent directories as needed.
// An existing file is only replaced when overwrite is true.
func WriteConfig(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	data, err := Marshal(path, cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
