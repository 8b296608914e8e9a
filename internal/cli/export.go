package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCommand(g *globals) *cobra.Command {
	var (
		format string
		hours  int
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download a telemetry report (csv, json, xlsx or pdf)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			body, name, err := g.client().Export(cmd.Context(), g.device, format, hours)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, filepath.Base(name))
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return err
			}
			g.logger.Info("report saved", zap.String("path", path), zap.Int("bytes", len(body)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "csv, json, xlsx or pdf")
	cmd.Flags().IntVar(&hours, "hours", 24, "window size")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write into")
	return cmd
}
