package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"museum-booking/internal/domain/manual"
	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/usecase/manualops"
)

func manualCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Work the manual booking queue",
	}
	cmd.AddCommand(manualListCmd(), manualCompleteCmd())
	return cmd
}

func manualListCmd() *cobra.Command {
	var (
		status string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manual bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter *manual.Status
			if status != "" {
				s, err := manual.ParseStatus(status)
				if err != nil {
					return err
				}
				filter = &s
			}

			var (
				queries manualops.Queries
				clk     clock.Clock
			)
			return withApp(cmd.Context(), func() error {
				items, err := queries.List(cmd.Context(), filter, limit)
				if err != nil {
					return err
				}
				return printJSON(cmd, resdto.FromManualBookings(items, clk.Now()))
			}, &queries, &clk)
		},
	}
	cmd.Flags().StringVar(&status, "status", "pending", "pending, completed or empty for all")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum records")
	return cmd
}

func manualCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id> <official-reference>",
		Short: "Record the platform reference for a hand-booked visit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			var (
				commands manualops.Commands
				clk      clock.Clock
			)
			return withApp(cmd.Context(), func() error {
				b, err := commands.Complete(cmd.Context(), id, args[1])
				if err != nil {
					return err
				}
				return printJSON(cmd, resdto.FromManualBooking(b, clk.Now()))
			}, &commands, &clk)
		},
	}
}
