package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/lasagna-timer/internal/lasagna"
	"github.com/shinji-kodama/lasagna-timer/internal/model"
)

// NewRemainingCommand creates the "remaining" command.
func NewRemainingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remaining <minutes-in-oven>",
		Short: "Print how many oven minutes are left",
		Long: `Print how many minutes the lasagna still needs in the oven.

A negative result means the lasagna has been in the oven longer than
expected.

Examples:
  lasagna-timer remaining 30
  lasagna-timer remaining 45 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemaining(cmd.OutOrStdout(), args)
		},
	}
}

func runRemaining(w io.Writer, args []string) error {
	inOven, err := parseIntArg("minutes-in-oven", args[0])
	if err != nil {
		return err
	}

	cfg, err := loadKitchenConfig()
	if err != nil {
		return err
	}

	remaining := lasagna.RemainingOvenTime(inOven)
	VerboseLog("%d - %d = %d", lasagna.OvenTime(), inOven, remaining)

	if useJSON(cfg) {
		return writeJSON(w, struct {
			MinutesInOven    int              `json:"minutesInOven"`
			RemainingMinutes int              `json:"remainingMinutes"`
			Status           model.BakeStatus `json:"status"`
		}{inOven, remaining, model.BakeStatusFor(remaining)})
	}
	_, err = fmt.Fprintln(w, remaining)
	return err
}
