package cli

import (
	"fmt"
	"time"

	reqdto "hydro-command/internal/handler/dto/request"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDeviceCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Manage devices and their API keys",
	}
	cmd.AddCommand(newDeviceListCommand(g), newDeviceRegisterCommand(g), newDeviceKeyCommand(g), newDevicePollCommand(g))
	return cmd
}

func newDeviceListCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			devices, err := g.client().ListDevices(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "DEVICE\tNAME\tACTIVE\tLAST SEEN")
			for _, d := range devices {
				seen := "never"
				if d.LastSeenAt != nil {
					seen = d.LastSeenAt.Format(time.RFC3339)
				}
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", d.ID, d.Name, d.IsActive, seen)
			}
			return tw.Flush()
		},
	}
}

func newDeviceRegisterCommand(g *globals) *cobra.Command {
	var name, location string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a device (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			req := reqdto.RegisterDeviceRequest{ID: g.device, Name: name}
			if location != "" {
				req.Location = &location
			}
			dev, err := g.client().RegisterDevice(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dev)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&location, "location", "", "where the device is installed")
	return cmd
}

func newDeviceKeyCommand(g *globals) *cobra.Command {
	var validFor time.Duration
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Issue an API key for the device (admin); printed once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			var expiresAt *time.Time
			if validFor > 0 {
				t := time.Now().Add(validFor).UTC()
				expiresAt = &t
			}
			key, err := g.client().IssueAPIKey(cmd.Context(), g.device, expiresAt)
			if err != nil {
				return err
			}
			g.logger.Info("api key issued", zap.String("device_id", key.DeviceID), zap.String("prefix", key.Prefix))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key.APIKey)
			return err
		},
	}
	cmd.Flags().DurationVar(&validFor, "valid-for", 0, "key lifetime (no expiry when 0)")
	return cmd
}

// newDevicePollCommand claims pending commands the way firmware does.
// Claimed commands are marked sent and will not be delivered again.
func newDevicePollCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Claim pending commands as the device (uses --api-key)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			if g.apiKey == "" {
				return errAPIKeyRequired
			}
			res, err := g.client().PollCommands(cmd.Context(), g.device)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res.Commands)
		},
	}
}
