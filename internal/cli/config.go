// config.go implements "lasagna-timer config", which creates and inspects
// the kitchen config file.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/lasagna-timer/internal/config"
	"github.com/shinji-kodama/lasagna-timer/internal/lasagna"
	"github.com/shinji-kodama/lasagna-timer/internal/model"
)

// defaultConfigFile is where "config init" writes when no path is given.
const defaultConfigFile = "lasagna.yaml"

// NewConfigCommand creates the "config" command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the kitchen config file",
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// configInitFlags holds the flag values for "config init".
type configInitFlags struct {
	force bool
}

func newConfigInitCommand() *cobra.Command {
	flags := &configInitFlags{}

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a kitchen config file with the default values",
		Long: `Write a kitchen config file holding the default values.

The format follows the file extension: .yaml/.yml for YAML, .json/.jsonc
for JSON. Without a path, lasagna.yaml is written in the current directory.

Examples:
  lasagna-timer config init
  lasagna-timer config init .lasagna/config.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigInit(cmd.OutOrStdout(), path, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(w io.Writer, path string, flags *configInitFlags) error {
	perLayer := lasagna.DefaultTimePerLayer
	cfg := &config.Config{
		TimePerLayer: &perLayer,
		Output:       config.OutputText,
	}

	if err := config.WriteConfig(path, cfg, flags.force); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to create config file", err)
	}
	VerboseLog("Wrote %s", path)

	if jsonOutput {
		return writeJSON(w, struct {
			Path string `json:"path"`
		}{path})
	}
	_, err := fmt.Fprintf(w, "Created %s\n", path)
	return err
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective kitchen config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout())
		},
	}
}

// configShowJSON is the JSON output structure for "config show".
type configShowJSON struct {
	Path         string `json:"path"`
	TimePerLayer int    `json:"timePerLayer"`
	OvenMinutes  int    `json:"ovenMinutes"`
	Output       string `json:"output"`
}

func runConfigShow(w io.Writer) error {
	cfg, err := loadKitchenConfig()
	if err != nil {
		return err
	}

	output := config.OutputText
	if useJSON(cfg) {
		output = config.OutputJSON
	}

	result := configShowJSON{
		Path:         cfg.Path(),
		TimePerLayer: cfg.EffectiveTimePerLayer(),
		OvenMinutes:  lasagna.OvenTime(),
		Output:       output,
	}

	if output == config.OutputJSON {
		return writeJSON(w, result)
	}

	source := result.Path
	if source == "" {
		source = "(defaults)"
	}
	_, err = fmt.Fprintf(w, "%-16s %s\n%-16s %d min\n%-16s %d min\n%-16s %s\n",
		"Source:", source,
		"Time per layer:", result.TimePerLayer,
		"Oven:", result.OvenMinutes,
		"Output:", result.Output,
	)
	return err
}
