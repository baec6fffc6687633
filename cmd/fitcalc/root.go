package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fitcalc",
		Short:         "fitcalc derives body metrics and activity streaks offline",
		Long:          "fitcalc runs the metrics calculator and the streak tracker of the engine without a database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMetricsCmd())
	root.AddCommand(newStreakCmd())
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
