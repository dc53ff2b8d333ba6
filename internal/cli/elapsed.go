package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/lasagna-timer/internal/lasagna"
)

// NewElapsedCommand creates the "elapsed" command.
//
// Elapsed time always prepares layers at the default 2 minutes; use
// "plan" for an elapsed figure that honours a custom time per layer.
func NewElapsedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elapsed <layers> <minutes-in-oven>",
		Short: "Print total minutes spent preparing and baking so far",
		Long: `Print the total minutes spent so far: preparation of every layer at
2 minutes each plus the minutes already spent in the oven.

Examples:
  lasagna-timer elapsed 3 20`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElapsed(cmd.OutOrStdout(), args)
		},
	}
}

func runElapsed(w io.Writer, args []string) error {
	layers, err := parseIntArg("layers", args[0])
	if err != nil {
		return err
	}
	inOven, err := parseIntArg("minutes-in-oven", args[1])
	if err != nil {
		return err
	}

	cfg, err := loadKitchenConfig()
	if err != nil {
		return err
	}

	minutes := lasagna.ElapsedTime(layers, inOven)

	if useJSON(cfg) {
		return writeJSON(w, struct {
			Layers         int `json:"layers"`
			MinutesInOven  int `json:"minutesInOven"`
			ElapsedMinutes int `json:"elapsedMinutes"`
		}{layers, inOven, minutes})
	}
	_, err = fmt.Fprintln(w, minutes)
	return err
}
