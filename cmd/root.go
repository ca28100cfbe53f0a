package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bnema/athena-partnership/internal/telemetry"
	"github.com/bnema/athena-partnership/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	serviceName     = "athena"
	verboseEnv      = "ATHENA_VERBOSE"
	shutdownTimeout = 5 * time.Second
)

type globalOptions struct {
	verbose    bool
	configFile string
	timeout    time.Duration
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "athena",
		Short:         "EPSILON/ATHENA partnership coordinator",
		Long:          "athena reviews an implementation plan through error-pattern detection, a dialogue/strategic/creative review or an iterative consensus dialogue, and records the outcome.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.start(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.stop()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	flags.StringVar(&app.opts.configFile, "config", "", "Config file (default ~/.athena/config.toml)")
	flags.DurationVar(&app.opts.timeout, "timeout", 0, "Abort after this long (0 means no limit)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCoordinateCmd(app),
		newConsensusCmd(app),
		newDetectCmd(app),
		newConfigCmd(app),
		newHistoryCmd(app),
		newSignaturesCmd(app),
	)

	return rootCmd
}

// start sets up logging, telemetry and the signal-aware context. Wiring of
// stores and the coordinator is deferred to the commands that need it.
func (a *app) start(cmd *cobra.Command) error {
	logger, err := newLogger(a.opts.verbose || envTrue(verboseEnv))
	if err != nil {
		return err
	}
	a.logger = logger

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	cancels := []context.CancelFunc{stop}
	if a.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.timeout)
		cancels = append(cancels, cancel)
	}
	a.cancel = func() {
		for i := len(cancels) - 1; i >= 0; i-- {
			cancels[i]()
		}
	}
	cmd.SetContext(ctx)

	providers, err := telemetry.Init(ctx, serviceName, version.Version, cmd.ErrOrStderr())
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
	}
	a.telemetry = providers

	return nil
}

func (a *app) stop() {
	a.stopOnce.Do(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.telemetry.Shutdown(shutdownCtx); err != nil && a.logger != nil {
			a.logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
		a.close()
		if a.cancel != nil {
			a.cancel()
		}
		if a.logger != nil {
			_ = a.logger.Sync()
		}
	})
}

// newLogger is silent unless verbose; verbose logs go to stderr at debug level.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

func envTrue(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
