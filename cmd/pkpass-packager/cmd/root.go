package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/walletforge/pkpass/internal/config"
	"github.com/walletforge/pkpass/internal/logger"
	"github.com/walletforge/pkpass/internal/service/packager"
	"github.com/walletforge/pkpass/internal/version"
)

var (
	// configPath to the signing settings YAML file.
	configPath string

	// logLevel is the minimum level for console output.
	logLevel string

	// rootCmd represents the base command for building signed pass archives.
	rootCmd = &cobra.Command{
		Use:   "pkpass-packager [definition-file] [output-file]",
		Short: "Build a signed pass archive from a definition document",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &packager.Options{
				ConfigPath:     configPath,
				DefinitionPath: args[0],
				OutputPath:     args[1],
			}

			return packager.Run(ctx, options)
		},
	}
)

// Execute runs the pkpass-packager CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to signing settings file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "logging level (debug, info, warn, error)")
}
