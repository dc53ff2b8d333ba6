// plan.go implements "lasagna-timer plan", which prints every estimate for
// one lasagna at once.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shinji-kodama/lasagna-timer/internal/lasagna"
	"github.com/shinji-kodama/lasagna-timer/internal/model"
)

// NewPlanCommand creates the "plan" command.
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <layers> <minutes-in-oven>",
		Short: "Print a full cooking report",
		Long: `Print preparation, oven, remaining, and elapsed minutes together.

Unlike "elapsed", the report's elapsed time uses the same time per layer
as its preparation time.

Examples:
  lasagna-timer plan 3 20
  lasagna-timer plan 4 40 --time-per-layer 3 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.OutOrStdout(), cmd.Flags(), args)
		},
	}

	cmd.Flags().Int(timePerLayerFlag, lasagna.DefaultTimePerLayer, "Preparation minutes per layer")

	return cmd
}

func runPlan(w io.Writer, flags *pflag.FlagSet, args []string) error {
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

	perLayer, err := timePerLayer(flags, cfg)
	if err != nil {
		return err
	}

	report := lasagna.Plan(layers, inOven, lasagna.WithTimePerLayer(perLayer))
	VerboseLog("Report: %s", report)

	if useJSON(cfg) {
		return writeJSON(w, report)
	}
	return printReportText(w, report)
}

// printReportText outputs the report as aligned label/value rows:
//
//	Layers:          3
//	Time per layer:  2 min
//	Preparation:     6 min
//	Oven:            20/40 min
//	Remaining:       20 min
//	Elapsed:         26 min
//	Status:          baking
func printReportText(w io.Writer, r model.Report) error {
	rows := []struct {
		label string
		value string
	}{
		{"Layers:", fmt.Sprintf("%d", r.Layers)},
		{"Time per layer:", fmt.Sprintf("%d min", r.TimePerLayer)},
		{"Preparation:", fmt.Sprintf("%d min", r.PreparationMinutes)},
		{"Oven:", fmt.Sprintf("%d/%d min", r.MinutesInOven, r.OvenMinutes)},
		{"Remaining:", fmt.Sprintf("%d min", r.RemainingMinutes)},
		{"Elapsed:", fmt.Sprintf("%d min", r.ElapsedMinutes)},
		{"Status:", r.Status.String()},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-16s %s\n", row.label, row.value); err != nil {
			return err
		}
	}
	return nil
}
