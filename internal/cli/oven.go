package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/lasagna-timer/internal/lasagna"
)

// NewOvenCommand creates the "oven" command, which prints the expected
// oven time.
func NewOvenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "oven",
		Short: "Print the expected oven time in minutes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOven(cmd.OutOrStdout())
		},
	}
}

func runOven(w io.Writer) error {
	cfg, err := loadKitchenConfig()
	if err != nil {
		return err
	}

	minutes := lasagna.OvenTime()
	if useJSON(cfg) {
		return writeJSON(w, struct {
			OvenMinutes int `json:"ovenMinutes"`
		}{minutes})
	}
	_, err = fmt.Fprintln(w, minutes)
	return err
}
