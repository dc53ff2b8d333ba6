package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shinji-kodama/lasagna-timer/internal/lasagna"
)

// NewPrepCommand creates the "prep" command.
func NewPrepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prep <layers>",
		Short: "Print the preparation time for a number of layers",
		Long: `Print the preparation time for a number of layers.

Each layer takes 2 minutes unless --time-per-layer or the kitchen config's
timePerLayer says otherwise.

Examples:
  lasagna-timer prep 2
  lasagna-timer prep 4 --time-per-layer 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrep(cmd.OutOrStdout(), cmd.Flags(), args)
		},
	}

	cmd.Flags().Int(timePerLayerFlag, lasagna.DefaultTimePerLayer, "Preparation minutes per layer")

	return cmd
}

func runPrep(w io.Writer, flags *pflag.FlagSet, args []string) error {
	layers, err := parseIntArg("layers", args[0])
	if err != nil {
		return err
	}

	cfg, err := loadKitchenConfig()
	if err != nil {
		return err
	}

	perLayer, err := timePerLayer(flags, cfg)
	if err != nil {
		return err
	}

	minutes := lasagna.PreparationTime(layers, lasagna.WithTimePerLayer(perLayer))

	if useJSON(cfg) {
		return writeJSON(w, struct {
			Layers             int `json:"layers"`
			TimePerLayer       int `json:"timePerLayer"`
			PreparationMinutes int `json:"preparationMinutes"`
		}{layers, perLayer, minutes})
	}
	_, err = fmt.Fprintln(w, minutes)
	return err
}
