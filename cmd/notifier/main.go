package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("Notifier failed", "error", err)
		cancel()
		os.Exit(1) //nolint:gocritic // cancel is called explicitly
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "outage-notifier",
		Short:         "Posts power outage schedule updates to a Telegram channel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var force bool
	check := &cobra.Command{
		Use:   "check",
		Short: "Run a single check and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), force)
		},
	}
	check.Flags().BoolVarP(&force, "force", "f", false, "post the schedule even if nothing changed (same as FORCE_SEND=true)")

	run := &cobra.Command{
		Use:   "run",
		Short: "Check the schedule periodically until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoop(cmd.Context())
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored schedule so the next check posts it as a first run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd.Context())
		},
	}

	root.AddCommand(run, check, reset)
	return root
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
