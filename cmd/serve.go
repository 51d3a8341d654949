package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(
					func() *gin.Engine {
						return gin.New()
					},
				),
				fx.Invoke(
					startServer,
				),
			)

			if err := app.Start(cmd.Context()); err != nil {
				slog.Error("アプリケーションの起動に失敗しました", "error", err)
				return err
			}

			<-app.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.Stop(stopCtx); err != nil {
				slog.Error("アプリケーションの停止に失敗しました", "error", err)
			}

			slog.Info("アプリケーションが正常に停止しました")
			return nil
		},
	}
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("🚀 サーバーを起動します", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			return srv.Shutdown(ctx)
		},
	})
}
