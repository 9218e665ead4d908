package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"museum-booking/internal/domain/timing"
	reqdto "museum-booking/internal/handler/dto/request"
	resdto "museum-booking/internal/handler/dto/response"
	bookingusecase "museum-booking/internal/usecase/booking"
)

func attemptCmd() *cobra.Command {
	var (
		file          string
		requireWindow bool
	)
	cmd := &cobra.Command{
		Use:   "attempt",
		Short: "Run one booking attempt through the escalation chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readAttemptRequest(cmd, file)
			if err != nil {
				return err
			}

			var (
				commands bookingusecase.Commands
				gate     *timing.Gate
			)
			return withApp(cmd.Context(), func() error {
				if st := gate.Status(); requireWindow && !st.CanBook {
					return fmt.Errorf("release window closed, next opening %s", st.NextRelease)
				}
				outcome, err := commands.AttemptBooking(cmd.Context(), req.ToParams())
				if err != nil {
					return err
				}
				return printJSON(cmd, resdto.FromAttemptOutcome(outcome))
			}, &commands, &gate)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Booking request JSON file (- for stdin)")
	cmd.Flags().BoolVar(&requireWindow, "require-window", false, "Refuse to run outside the release window")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readAttemptRequest(cmd *cobra.Command, file string) (reqdto.AttemptBookingRequest, error) {
	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return reqdto.AttemptBookingRequest{}, err
		}
		defer f.Close()
		r = f
	}

	var req reqdto.AttemptBookingRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return reqdto.AttemptBookingRequest{}, fmt.Errorf("decode %s: %w", file, err)
	}
	return req, nil
}
