package cli

import (
	"context"
	"io"
	"os"
	"time"

	"hydro-command/internal/client"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globals are the persistent flags shared by every subcommand.
type globals struct {
	server  string
	token   string
	apiKey  string
	device  string
	timeout time.Duration
	retries int
	verbose bool
	jsonLog bool

	logger *zap.Logger
}

func (g *globals) client() *client.Client {
	return client.New(client.Config{
		BaseURL: g.server,
		Token:   g.token,
		APIKey:  g.apiKey,
		Timeout: g.timeout,
		Retries: g.retries,
	}, g.logger)
}

func (g *globals) requireDevice() error {
	if g.device == "" {
		return errDeviceRequired
	}
	return nil
}

// NewRootCommand builds the hydroctl command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "hydroctl",
		Short:         "Operate hydro-command devices from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), g.verbose, g.jsonLog)
			if err != nil {
				return err
			}
			g.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&g.server, "server", envOr("HYDRO_SERVER", client.DefaultBaseURL), "API base URL")
	f.StringVar(&g.token, "token", os.Getenv("HYDRO_TOKEN"), "operator JWT")
	f.StringVar(&g.apiKey, "api-key", os.Getenv("HYDRO_API_KEY"), "device API key")
	f.StringVarP(&g.device, "device", "d", os.Getenv("HYDRO_DEVICE"), "device id")
	f.DurationVar(&g.timeout, "timeout", client.DefaultTimeout, "per request timeout")
	f.IntVar(&g.retries, "retries", 2, "retries for read requests")
	f.BoolVarP(&g.verbose, "verbose", "v", false, "debug logging")
	f.BoolVar(&g.jsonLog, "log-json", false, "log as JSON")

	root.AddCommand(
		newTokenCommand(g),
		newDeviceCommand(g),
		newEnqueueCommand(g),
		newHistoryCommand(g),
		newPumpCommand(g),
		newEmergencyStopCommand(g),
		newTelemetryCommand(g),
		newAlertsCommand(g),
		newExportCommand(g),
		newMigrateCommand(g),
	)
	return root
}

// Execute runs the CLI until ctx is cancelled or the command returns.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newLogger(w io.Writer, verbose, asJSON bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)
	if asJSON {
		prod := zap.NewProductionEncoderConfig()
		prod.TimeKey = "timestamp"
		prod.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(prod)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).With(zap.String("service_name", "hydroctl")), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
