package cli

import (
	"fmt"
	"time"

	"hydro-command/internal/domain/user"
	"hydro-command/internal/pkg/config"
	"hydro-command/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTokenCommand(g *globals) *cobra.Command {
	var (
		role     string
		userID   string
		username string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator JWT with the server's JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.JWTConfig
			if err := envconfig.Process("", &cfg); err != nil {
				return fmt.Errorf("load jwt config: %w", err)
			}
			r, err := user.NewRole(role)
			if err != nil {
				return err
			}
			id := uuid.New()
			if userID != "" {
				if id, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("invalid --user: %w", err)
				}
			}

			token, err := jwt.NewService(cfg.Secret, ttl).GenerateToken(id, username, r)
			if err != nil {
				return err
			}
			g.logger.Debug("token issued", zap.String("user_id", id.String()), zap.String("role", string(r)), zap.Duration("ttl", ttl))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&role, "role", string(user.RoleOperator), "viewer, operator or admin")
	cmd.Flags().StringVar(&userID, "user", "", "user id (random when empty)")
	cmd.Flags().StringVar(&username, "name", "hydroctl", "username claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
