package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/jobs"
	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewScheduler,
	),
)

// StartScheduler ties the cron scheduler to the app lifecycle. JOBS_ENABLED=false leaves it idle.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, scheduler *jobs.Scheduler) error {
	if !cfg.Jobs.Enabled {
		slog.Info("バックグラウンドジョブは無効です")
		return nil
	}
	if err := scheduler.Register(); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			slog.Info("⏰ スケジューラーを起動しました",
				"reconcile", cfg.Jobs.ReconcileSchedule,
				"outbox", cfg.Jobs.OutboxSchedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop(ctx)
			return nil
		},
	})
	return nil
}
