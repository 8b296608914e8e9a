package bootstrap

import (
	"time"

	"hydro-command/internal/pkg/config"
	"hydro-command/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}
