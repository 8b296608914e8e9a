package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hydro-command/internal/domain/command"
	reqdto "hydro-command/internal/handler/dto/request"
	"hydro-command/internal/pkg/ptr"

	"github.com/spf13/cobra"
)

func newEnqueueCommand(g *globals) *cobra.Command {
	var (
		action   string
		params   []string
		priority string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Queue a command for the device",
		Long: "Queue a command for the device. The server only confirms that the command was stored;\n" +
			"the device picks it up on its next poll or it expires.",
		Example: "  hydroctl enqueue -d grow-bag-1 --action relay2_on --param duration=30 --priority high",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			if g.token == "" {
				return errTokenRequired
			}
			parsed, err := parseParams(params)
			if err != nil {
				return err
			}
			req := reqdto.EnqueueCommandRequest{Action: action, Parameters: parsed, Priority: priority}
			if ttl > 0 {
				req.TTLSeconds = ptr.To(int(ttl / time.Second))
			}

			res, err := g.client().EnqueueCommand(cmd.Context(), g.device, req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "queued %s (%s) for %s, expires %s\n",
				res.Action, res.Priority, res.DeviceID, res.ExpiresAt.Format(time.RFC3339))
			return err
		},
	}
	cmd.Flags().StringVar(&action, "action", "", "command action, e.g. "+command.ActionNutrientPumpOn)
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&priority, "priority", string(command.PriorityNormal), "normal or high")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "time to live (server default when 0)")
	_ = cmd.MarkFlagRequired("action")
	return cmd
}

func newHistoryCommand(g *globals) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent commands of the device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			items, err := g.client().CommandHistory(cmd.Context(), g.device, limit)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "SEQ\tACTION\tPRIORITY\tSTATUS\tCREATED\tEXPIRES")
			for _, it := range items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", it.Seq, it.Action, it.Priority, it.Status,
					it.CreatedAt.Format(time.RFC3339), it.ExpiresAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "max commands")
	return cmd
}

// parseParams turns key=value pairs into command parameters. Numbers and
// booleans keep their type so firmware sees {"duration":30}, not "30".
func parseParams(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", errBadParam, p)
		}
		switch {
		case v == "true" || v == "false":
			out[k] = v == "true"
		default:
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				out[k] = n
			} else {
				out[k] = v
			}
		}
	}
	return out, nil
}
