package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/csecompass/catalog/internal/app"
	"github.com/csecompass/catalog/internal/pkg/config"
	"github.com/csecompass/catalog/internal/printer"
	"github.com/csecompass/catalog/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "compass",
	Short: "CSE Compass catalog of learning resources and roadmaps",
	Long: `compass serves and prints the CSE Compass catalog.

Resources and roadmaps are read from the configured record source
(Supabase by default, or MongoDB) on every request; nothing is ever written.

Configuration is read from the environment and an optional .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute runs the root command. Called once by main.main().
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.ExecuteContext(context.Background())
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.AddCommand(serveCmd, resourcesCmd, roadmapsCmd, cacheCmd)
}

// bootstrap loads configuration, initialises the logger on logOut and
// connects the record sources.
func bootstrap(ctx context.Context, logOut io.Writer) (*config.Config, zerolog.Logger, *app.Sources, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), nil, printer.Error("Invalid configuration", err.Error())
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Output:  logOut,
		Service: "compass",
	})

	sources, err := app.Build(ctx, cfg, log)
	if err != nil {
		return nil, log, nil, printer.Error("Record source unavailable", err.Error())
	}
	return cfg, log, sources, nil
}
