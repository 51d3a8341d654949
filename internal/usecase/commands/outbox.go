package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

//go:generate mockgen -source=outbox.go -destination=../../mock/commands/outbox_mock.go -package=commandsmock

const (
	maxEventAttempts  = 10
	eventRetryBase    = 5 * time.Second
	eventRetryCeiling = 10 * time.Minute
)

type RelayResult struct {
	Claimed int
	Sent    int
	Failed  int
}

type OutboxCommands interface {
	Relay(ctx context.Context, batch int32) (*RelayResult, error)
}

type outboxCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewOutboxCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) OutboxCommands {
	return &outboxCommandsImpl{uow: uow, publisher: publisher, clock: clk}
}

// Relay publishes due booking events. Claimed rows stay locked until the batch commits,
// so concurrent relays skip them.
func (uc *outboxCommandsImpl) Relay(ctx context.Context, batch int32) (*RelayResult, error) {
	result := &RelayResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = RelayResult{}
		now := uc.clock.Now()

		events, err := tx.Events().ClaimDue(ctx, tx.DB(), now, batch)
		if err != nil {
			return translateRepoErr(err, nil)
		}
		result.Claimed = len(events)

		for _, ev := range events {
			if perr := uc.publisher.Publish(ctx, ev.Topic, ev.ID, ev.Payload); perr != nil {
				slog.Warn("failed to publish booking event",
					"event_id", ev.ID,
					"topic", ev.Topic,
					"attempt", ev.Attempts+1,
					"error", perr.Error())
				runAt := now.Add(retryDelay(ev.Attempts))
				if err := tx.Events().MarkRetry(ctx, tx.DB(), ev.ID, perr.Error(), runAt, maxEventAttempts); err != nil {
					return translateRepoErr(err, nil)
				}
				result.Failed++
				continue
			}
			if err := tx.Events().MarkSent(ctx, tx.DB(), ev.ID); err != nil {
				return translateRepoErr(err, nil)
			}
			result.Sent++
		}
		return nil
	})
	if err != nil {
		return nil, asStoreFailure(err)
	}
	return result, nil
}

func retryDelay(attempts int32) time.Duration {
	if attempts > 16 {
		return eventRetryCeiling
	}
	return min(eventRetryBase*time.Duration(1<<attempts), eventRetryCeiling)
}
