package bootstrap

import (
	"context"

	"hydro-command/internal/pkg/config"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		StartExpirySweeper,
	),
)

func StartExpirySweeper(lc fx.Lifecycle, cfg config.Config, cmds commands.CommandCommands) {
	sweeper := worker.NewExpirySweeper(cmds, cfg.Command.ExpirySweepInterval)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Start(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
