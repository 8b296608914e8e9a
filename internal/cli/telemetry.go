package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"hydro-command/internal/client"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultWatchInterval = 5 * time.Second

func newTelemetryCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telemetry",
		Short: "Read device telemetry",
	}
	cmd.AddCommand(newTelemetryWatchCommand(g))
	return cmd
}

func newTelemetryWatchCommand(g *globals) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the latest reading every interval until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			return watchTelemetry(cmd.Context(), g.client(), g.device, interval, cmd.OutOrStdout(), g.logger)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", defaultWatchInterval, "poll interval")
	return cmd
}

// watchTelemetry polls until ctx is done. Failed polls are logged and the
// loop keeps going.
func watchTelemetry(ctx context.Context, c *client.Client, deviceID string, interval time.Duration, out io.Writer, logger *zap.Logger) error {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastID int64
	for {
		reading, err := c.LatestReading(ctx, deviceID)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil:
			logger.Warn("telemetry poll failed", zap.String("device_id", deviceID), zap.Error(err))
		case reading != nil && reading.ID != lastID:
			lastID = reading.ID
			fmt.Fprintf(out, "%s  %s  water=%s\n", reading.Timestamp.Format(time.RFC3339), formatReadings(reading.Readings), reading.WaterLevel)
			for _, p := range sortedKeys(reading.Statuses) {
				if status := reading.Statuses[p]; status != "good" {
					fmt.Fprintf(out, "    %s: %s\n", p, status)
				}
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
