package main

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const oneShotTimeout = 5 * time.Minute

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Persist the effective status of bookings whose stay has started or ended",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status commands.StatusCommands
			return runOnce(cmd.Context(), fx.Populate(&status), func(ctx context.Context) error {
				res, err := status.Reconcile(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("scanned %d bookings, progressed %d\n", res.Scanned, res.Progressed)
				return nil
			})
		},
	}
}

func relayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "Publish pending booking events once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				outbox commands.OutboxCommands
				cfg    config.Config
			)
			return runOnce(cmd.Context(), fx.Populate(&outbox, &cfg), func(ctx context.Context) error {
				res, err := outbox.Relay(ctx, cfg.Jobs.OutboxBatch)
				if err != nil {
					return err
				}
				fmt.Printf("claimed %d events, sent %d, failed %d\n", res.Claimed, res.Sent, res.Failed)
				return nil
			})
		},
	}
}

// runOnce builds the core graph, runs fn and tears the graph down again.
func runOnce(parent context.Context, populate fx.Option, fn func(ctx context.Context) error) error {
	app := fx.New(
		bootstrap.CoreModule,
		populate,
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(parent, oneShotTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	return fn(ctx)
}
