// Command bookctl drives the booking engine from a terminal: release window
// checks, ID validation, one-off attempts and the manual queue.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"museum-booking/cmd/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bookctl",
		Short:         "Museum booking engine control",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.AddCommand(
		timingCmd(),
		idcheckCmd(),
		attemptCmd(),
		manualCmd(),
	)
	return cmd
}

// withApp starts the core fx graph, fills targets and stops it when fn returns.
func withApp(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(targets...),
	)
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()
	return fn()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
