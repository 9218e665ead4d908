package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/timing"
	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"
)

func timingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timing",
		Short: "Show the platform release window status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := config.LoadReleaseConfig()
			if err != nil {
				return err
			}
			hour, minute, err := rc.ReleaseClock()
			if err != nil {
				return err
			}
			gate, err := timing.NewGate(clock.NewRealClock(), rc.Location(), hour, minute, rc.Window)
			if err != nil {
				return err
			}
			return printJSON(cmd, resdto.FromTimingStatus(gate.Status()))
		},
	}
}

func idcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "idcheck <id-number>",
		Short: "Validate an 18-digit resident ID checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := booking.NormalizeIDNumber(args[0])
			if !booking.ValidIDCardNumber(id) {
				return fmt.Errorf("%s: invalid id number", booking.MaskedIDNumber(id))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", booking.MaskedIDNumber(id))
			return nil
		},
	}
}
