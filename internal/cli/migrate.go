package cli

import (
	"fmt"

	"hydro-command/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultDevURL = "docker://postgres/17/dev?search_path=public"

func newMigrateCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema with atlas",
	}
	cmd.AddCommand(newMigrateApplyCommand(g))
	return cmd
}

// newMigrateApplyCommand brings the database to the schema described by the
// migrations directory. Needs the atlas binary on PATH.
func newMigrateApplyCommand(g *globals) *cobra.Command {
	var (
		url    string
		devURL string
		dir    string
		atlas  string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply migrations/ to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				var db config.DBConfig
				if err := envconfig.Process("", &db); err != nil {
					return fmt.Errorf("no --url and DB_* env incomplete: %w", err)
				}
				url = db.BuildDSN()
			}

			ac, err := atlasexec.NewClient(".", atlas)
			if err != nil {
				return fmt.Errorf("atlas client: %w", err)
			}
			res, err := ac.SchemaApply(cmd.Context(), &atlasexec.SchemaApplyParams{
				URL:         url,
				To:          "file://" + dir,
				DevURL:      devURL,
				DryRun:      dryRun,
				AutoApprove: true,
			})
			if err != nil {
				return fmt.Errorf("schema apply: %w", err)
			}

			stmts := res.Changes.Applied
			if dryRun {
				stmts = res.Changes.Pending
			}
			g.logger.Info("schema apply finished", zap.Bool("dry_run", dryRun), zap.Int("statements", len(stmts)))
			for _, s := range stmts {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "target database URL (default: built from DB_* env)")
	cmd.Flags().StringVar(&devURL, "dev-url", defaultDevURL, "atlas dev database")
	cmd.Flags().StringVar(&dir, "dir", "migrations", "migrations directory")
	cmd.Flags().StringVar(&atlas, "atlas", "atlas", "atlas binary")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the plan without applying it")
	return cmd
}
