package bootstrap

import (
	"log/slog"

	"hydro-command/internal/handler/middleware"
	"hydro-command/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

// NewRequestLogger also installs the slog default used by packages that log
// without an injected logger.
func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
