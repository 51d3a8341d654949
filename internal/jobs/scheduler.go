package jobs

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 2 * time.Minute

// Scheduler runs the background maintenance jobs: status reconciliation and outbox relay.
type Scheduler struct {
	cron   *cron.Cron
	status commands.StatusCommands
	outbox commands.OutboxCommands
	cfg    config.JobsConfig
}

func NewScheduler(cfg config.Config, loc *time.Location, status commands.StatusCommands, outbox commands.OutboxCommands) *Scheduler {
	logger := slogCronLogger{}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	return &Scheduler{
		cron:   c,
		status: status,
		outbox: outbox,
		cfg:    cfg.Jobs,
	}
}

// Register adds the jobs without starting the scheduler.
func (s *Scheduler) Register() error {
	if _, err := s.cron.AddFunc(s.cfg.ReconcileSchedule, s.RunReconcile); err != nil {
		return errs.Wrapf(err, "invalid reconcile schedule %q", s.cfg.ReconcileSchedule)
	}
	if _, err := s.cron.AddFunc(s.cfg.OutboxSchedule, s.RunOutbox); err != nil {
		return errs.Wrapf(err, "invalid outbox schedule %q", s.cfg.OutboxSchedule)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		slog.Warn("scheduler stop timed out, jobs still running")
	}
}

func (s *Scheduler) RunReconcile() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.status.Reconcile(ctx); err != nil {
		slog.Error("status reconcile failed", "error", err.Error())
	}
}

func (s *Scheduler) RunOutbox() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	res, err := s.outbox.Relay(ctx, s.cfg.OutboxBatch)
	if err != nil {
		slog.Error("outbox relay failed", "error", err.Error())
		return
	}
	if res.Claimed > 0 {
		slog.Info("outbox relayed", "claimed", res.Claimed, "sent", res.Sent, "failed", res.Failed)
	}
}

type slogCronLogger struct{}

func (slogCronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
