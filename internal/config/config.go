package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/lasagna-timer/internal/lasagna"
	"github.com/shinji-kodama/lasagna-timer/internal/model"
)

// Output format names accepted by the "output" field.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the kitchen configuration.
//
// Pointer and empty-string zero values mean "not set" so callers can tell an
// explicit zero apart from an omitted field.
type Config struct {
	// TimePerLayer overrides the preparation minutes per layer.
	TimePerLayer *int `yaml:"timePerLayer,omitempty" json:"timePerLayer,omitempty"`

	// Output selects the default output format ("text" or "json").
	// The --json flag always wins over this field.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// path is the file the config was loaded from. Empty for defaults.
	path string
}

// Default returns a Config with no fields set.
func Default() *Config {
	return &Config{}
}

// Path returns the file the config was loaded from, or "" if the config
// holds defaults only.
func (c *Config) Path() string {
	return c.path
}

// EffectiveTimePerLayer returns the configured minutes per layer, falling
// back to lasagna.DefaultTimePerLayer.
func (c *Config) EffectiveTimePerLayer() int {
	if c.TimePerLayer == nil {
		return lasagna.DefaultTimePerLayer
	}
	return *c.TimePerLayer
}

// WantsJSON reports whether the config selects JSON output.
func (c *Config) WantsJSON() bool {
	return strings.EqualFold(c.Output, OutputJSON)
}

// format identifies the serialization of a config file.
type format int

const (
	formatYAML format = iota
	formatJSON
)

// formatFor picks the decoder from the file extension.
func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json", ".jsonc":
		return formatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported config file extension %q (valid: .yaml, .yml, .json, .jsonc)", filepath.Ext(path))
	}
}

// LoadConfig reads and parses a kitchen config file, then validates it.
//
// Returns a CLIError with ExitConfigNotFound if the file does not exist,
// and ExitInvalidConfig if it cannot be parsed or fails validation.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigNotFound,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidConfig,
			fmt.Sprintf("invalid config file %s", path), err)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, model.WrapCLIError(model.ExitInvalidConfig,
			fmt.Sprintf("invalid config file %s", path), &errs[0])
	}

	cfg.path = path
	return cfg, nil
}

// Parse decodes config bytes. The path is only used to pick the format.
func Parse(path string, data []byte) (*Config, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch f {
	case formatYAML:
		// An empty document is not an error and leaves every field unset.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case formatJSON:
		// Strip // and /* */ comments and trailing commas first.
		clean := jsonc.ToJSON(data)
		if len(strings.TrimSpace(string(clean))) == 0 {
			return cfg, nil
		}
		if err := json.Unmarshal(clean, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return cfg, nil
}

// candidateNames lists the file names FindConfig looks for, in priority order.
var candidateNames = []string{
	"lasagna.yaml",
	"lasagna.yml",
	"lasagna.jsonc",
	"lasagna.json",
	filepath.Join(".lasagna", "config.yaml"),
}

// FindConfig searches dir for a kitchen config file and returns the first
// match. ok is false when no candidate exists; that is not an error since
// every field has a default.
func FindConfig(dir string) (path string, ok bool) {
	for _, name := range candidateNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Resolve loads the config the CLI should use. An explicit path must exist;
// otherwise dir is searched and defaults are returned when nothing is found.
func Resolve(explicitPath, dir string) (*Config, error) {
	if explicitPath != "" {
		return LoadConfig(explicitPath)
	}
	if found, ok := FindConfig(dir); ok {
		return LoadConfig(found)
	}
	return Default(), nil
}
