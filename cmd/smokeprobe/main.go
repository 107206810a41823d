// smokeprobe runs one-shot connectivity checks against the completion
// provider and the local candidate tracking endpoint.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/smokeprobe/internal/config"
	"github.com/hamed0406/smokeprobe/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, config.FromEnv))
}

// run executes the CLI. Probe outcomes never change the exit code; only
// usage errors and a failing stub listener do.
func run(args []string, stdout, stderr io.Writer, load func() config.Config) int {
	root := newRootCmd(&app{stdout: stdout, stderr: stderr, load: load})
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "smokeprobe: %v\n", err)
		return 1
	}
	return 0
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	stdout, stderr io.Writer
	load           func() config.Config

	cfg config.Config
	log *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "smokeprobe",
		Short:         "One-shot connectivity probes",
		Long:          `smokeprobe performs a single outbound call to a named service and reports what happened.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().String("log-dir", "", "Directory for the rotated JSON log (default $LOG_DIR or ./logs)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default $LOG_LEVEL or info)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		a.cfg = a.load()
		if v, _ := cmd.Flags().GetString("log-dir"); v != "" {
			a.cfg.LogDir = v
		}
		if v, _ := cmd.Flags().GetString("log-level"); v != "" {
			a.cfg.LogLevel = v
		}
		logger, err := logging.NewLogger(a.cfg.LogDir, a.cfg.LogLevel, a.stderr)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		a.log = logger
		return nil
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		if a.log != nil {
			_ = a.log.Sync()
		}
	}

	root.AddCommand(
		newCompletionCmd(a),
		newTrackCmd(a),
		newAllCmd(a),
		newStubCmd(a),
		newPreflightCmd(a),
	)
	return root
}
