package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pynocchio/extbuild/internal/branding"
	"github.com/pynocchio/extbuild/internal/config"
	"github.com/pynocchio/extbuild/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var logLevel string

// logger is configured by the root command before any subcommand runs.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config, else info)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` configures and builds CMake-based native extensions and places
their artifacts where the host package expects them, on Windows, macOS and
every other platform.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := logLevel
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		l, err := logging.New(level, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("configuring logging: %w", err)
		}
		logger = l
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
