package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAlertsCommand(g *globals) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List recent alert and error records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alerts, err := g.client().Alerts(cmd.Context(), g.device, limit)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "TIME\tDEVICE\tSEVERITY\tMESSAGE")
			for _, a := range alerts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Timestamp.Format(time.RFC3339), a.DeviceID, a.Severity, a.Message)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "max records")
	return cmd
}
