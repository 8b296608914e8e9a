package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"hydro-command/internal/client"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/reconciler"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPumpCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pump",
		Short: "Drive a pump and follow its advisory state",
	}
	cmd.AddCommand(newPumpRunCommand(g, clock.NewRealTimerClock()), newPumpStopCommand(g))
	return cmd
}

func (g *globals) newReconciler(clk clock.TimerClock, pickup time.Duration, observe func(reconciler.State)) *reconciler.Reconciler {
	dispatcher := client.NewCommandDispatcher(g.client(), g.device)
	return reconciler.New(dispatcher, clk, reconciler.DefaultPumps,
		reconciler.WithPickupDelay(pickup),
		reconciler.WithObserver(observe))
}

func printStates(out io.Writer) func(reconciler.State) {
	return func(s reconciler.State) {
		fmt.Fprintln(out, formatState(s))
	}
}

// newPumpRunCommand queues the on-command and renders the countdown until it
// ends. Interrupting asks before turning a running pump off.
func newPumpRunCommand(g *globals, clk clock.TimerClock) *cobra.Command {
	var (
		pump     string
		duration time.Duration
		pickup   time.Duration
	)
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run a pump for a duration",
		Example: "  hydroctl pump run -d grow-bag-1 --pump nutrient_pump --duration 30s",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			finished := make(chan struct{})
			var once sync.Once
			show := printStates(out)
			rec := g.newReconciler(clk, pickup, func(s reconciler.State) {
				if s.PumpID != pump {
					return
				}
				show(s)
				if s.Phase == reconciler.PhaseIdle {
					once.Do(func() { close(finished) })
				}
			})
			defer rec.Close()

			ctx := cmd.Context()
			if err := rec.Run(ctx, pump, duration); err != nil {
				return describeDispatch(err)
			}

			select {
			case <-finished:
				return nil
			case <-ctx.Done():
				// ctx is already cancelled; the off-command gets its own deadline
				stopCtx, cancel := context.WithTimeout(context.Background(), g.timeout)
				defer cancel()
				return stopInteractively(stopCtx, rec, pump, cmd.InOrStdin(), out, g.logger)
			}
		},
	}
	cmd.Flags().StringVar(&pump, "pump", reconciler.DefaultPumps[0].ID, "pump id ("+pumpIDs()+")")
	cmd.Flags().DurationVar(&duration, "duration", 30*time.Second, "how long the pump should run")
	cmd.Flags().DurationVar(&pickup, "poll-interval", reconciler.DefaultPickupDelay, "device poll interval")
	return cmd
}

func newPumpStopCommand(g *globals) *cobra.Command {
	var pump string
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Queue the pump's off-command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			// A fresh reconciler has no countdown, so no confirmation is needed.
			rec := g.newReconciler(clock.NewRealTimerClock(), reconciler.DefaultPickupDelay, printStates(cmd.OutOrStdout()))
			defer rec.Close()
			return describeDispatch(rec.Stop(cmd.Context(), pump, true))
		},
	}
	cmd.Flags().StringVar(&pump, "pump", reconciler.DefaultPumps[0].ID, "pump id ("+pumpIDs()+")")
	return cmd
}

func newEmergencyStopCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "estop",
		Short: "Queue a high-priority emergency_stop for the device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.requireDevice(); err != nil {
				return err
			}
			rec := g.newReconciler(clock.NewRealTimerClock(), reconciler.DefaultPickupDelay, printStates(cmd.OutOrStdout()))
			defer rec.Close()
			if err := rec.EmergencyStop(cmd.Context()); err != nil {
				return describeDispatch(err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "emergency_stop queued")
			return err
		},
	}
}

func stopInteractively(ctx context.Context, rec *reconciler.Reconciler, pump string, in io.Reader, out io.Writer, logger *zap.Logger) error {
	err := rec.Stop(ctx, pump, false)
	var confirm *reconciler.ConfirmationRequiredError
	if !errs.As(err, &confirm) {
		return describeDispatch(err)
	}

	fmt.Fprintf(out, "%s still has %s to run. Turn it off now? [y/N] ", pump, confirm.Remaining.Round(time.Second))
	answer, _ := bufio.NewReader(in).ReadString('\n')
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		logger.Info("pump left running", zap.String("pump", pump))
		return nil
	}
	return describeDispatch(rec.Stop(ctx, pump, true))
}

// describeDispatch turns a classified enqueue failure into an operator hint.
func describeDispatch(err error) error {
	var de *reconciler.DispatchError
	if !errs.As(err, &de) {
		return err
	}
	switch de.Reason {
	case reconciler.ReasonPermission:
		return fmt.Errorf("%s was rejected: your role cannot send commands (ask an admin for operator access): %w", de.Action, de.Err)
	case reconciler.ReasonConnectivity:
		return fmt.Errorf("%s not sent: server unreachable: %w", de.Action, de.Err)
	}
	return fmt.Errorf("%s not sent: server error: %w", de.Action, de.Err)
}

func pumpIDs() string {
	ids := make([]string, len(reconciler.DefaultPumps))
	for i, p := range reconciler.DefaultPumps {
		ids[i] = p.ID
	}
	return strings.Join(ids, ", ")
}
