package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/shinji-kodama/lasagna-timer/internal/config"
	"github.com/shinji-kodama/lasagna-timer/internal/model"
)

// timePerLayerFlag is the name of the flag shared by prep and plan.
const timePerLayerFlag = "time-per-layer"

// loadKitchenConfig resolves the kitchen config from --config or the
// working directory.
func loadKitchenConfig() (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	cfg, err := config.Resolve(configPath, dir)
	if err != nil {
		return nil, err
	}

	if cfg.Path() != "" {
		logger.WithFields(logrus.Fields{
			"path":         cfg.Path(),
			"timePerLayer": cfg.EffectiveTimePerLayer(),
			"output":       cfg.Output,
		}).Debug("loaded kitchen config")
	} else {
		VerboseLog("No kitchen config found, using defaults")
	}
	return cfg, nil
}

// useJSON reports whether output should be JSON: the --json flag wins,
// otherwise the config decides.
func useJSON(cfg *config.Config) bool {
	return jsonOutput || cfg.WantsJSON()
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// parseIntArg converts a positional argument to an int. Any integer is
// accepted, including zero and negatives.
func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("%s must be an integer, got %q", name, value), err)
	}
	return n, nil
}

// timePerLayer picks the minutes per layer: an explicitly set flag beats
// the config file, which beats the built-in default.
func timePerLayer(flags *pflag.FlagSet, cfg *config.Config) (int, error) {
	if flags.Changed(timePerLayerFlag) {
		v, err := flags.GetInt(timePerLayerFlag)
		if err != nil {
			return 0, model.WrapCLIError(model.ExitInvalidArgument,
				fmt.Sprintf("invalid --%s", timePerLayerFlag), err)
		}
		VerboseLog("Using --%s=%d", timePerLayerFlag, v)
		return v, nil
	}
	return cfg.EffectiveTimePerLayer(), nil
}
