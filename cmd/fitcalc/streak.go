package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/streak"
)

func newStreakCmd() *cobra.Command {
	var (
		tz  string
		now string
	)

	cmd := &cobra.Command{
		Use:     "streak [RFC3339 timestamp...]",
		Short:   "Count consecutive local days that have at least one event",
		Example: "  fitcalc streak --tz Europe/Rome 2026-10-15T08:00:00Z 2026-10-16T07:30:00+02:00",
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if now != "" {
				t, err := time.Parse(time.RFC3339, now)
				if err != nil {
					return fmt.Errorf("invalid --now %q: %w", now, err)
				}
				at = t
			}

			events := make([]time.Time, 0, len(args))
			for _, a := range args {
				t, err := time.Parse(time.RFC3339, a)
				if err != nil {
					return fmt.Errorf("invalid timestamp %q: %w", a, err)
				}
				events = append(events, t)
			}

			return writeJSON(cmd.OutOrStdout(), streak.Compute(events, tz, at))
		},
	}

	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA timezone the days are counted in")
	cmd.Flags().StringVar(&now, "now", "", "Evaluate as of this RFC3339 instant instead of the current time")
	return cmd
}
