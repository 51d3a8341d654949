package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

//go:generate mockgen -source=status.go -destination=../../mock/commands/status_mock.go -package=commandsmock

const (
	reconcileBatchSize  = 500
	reconcileMaxBatches = 1000
)

type ReconcileResult struct {
	Scanned    int
	Progressed int
}

type StatusCommands interface {
	Reconcile(ctx context.Context) (*ReconcileResult, error)
}

type statusCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewStatusCommands(uow shared.UnitOfWork, clk clock.Clock) StatusCommands {
	return &statusCommandsImpl{uow: uow, clock: clk}
}

// Reconcile persists the effective status of every booking whose stored status fell behind today.
// Each row is written only if its stored status is still the one that was read.
func (uc *statusCommandsImpl) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	today := clock.Today(uc.clock)
	result := &ReconcileResult{}

	for range reconcileMaxBatches {
		var scanned, progressed int
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			scanned, progressed = 0, 0
			rows, err := tx.Bookings().ListToProgress(ctx, tx.DB(), today, reconcileBatchSize)
			if err != nil {
				return translateRepoErr(err, nil)
			}
			scanned = len(rows)
			for _, row := range rows {
				next := booking.Progress(row.Status, row.Period, today)
				if next == row.Status {
					continue
				}
				ok, err := tx.Bookings().UpdateStatus(ctx, tx.DB(), row.ID, row.Status, next)
				if err != nil {
					return translateRepoErr(err, nil)
				}
				if ok {
					progressed++
				}
			}
			return nil
		})
		if err != nil {
			return result, asStoreFailure(err)
		}

		result.Scanned += scanned
		result.Progressed += progressed
		if scanned < reconcileBatchSize || progressed == 0 {
			break
		}
	}

	if result.Progressed > 0 {
		slog.Info("booking statuses reconciled",
			"today", today.Format("2006-01-02"),
			"scanned", result.Scanned,
			"progressed", result.Progressed)
	}
	return result, nil
}
