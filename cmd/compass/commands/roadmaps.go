package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/csecompass/catalog/internal/core/service"
	"github.com/csecompass/catalog/internal/printer"
)

var roadmapsCmd = &cobra.Command{
	Use:   "roadmaps",
	Short: "Print featured and other roadmaps",
	Args:  cobra.NoArgs,
	RunE:  runRoadmaps,
}

func runRoadmaps(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	_, log, sources, err := bootstrap(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer sources.Close(context.Background())

	browser, err := service.NewRoadmapService(sources.Roadmaps, log).Browse(ctx)
	if err != nil {
		return printer.Error("Failed to list roadmaps", err.Error())
	}

	printer.Roadmaps(cmd.OutOrStdout(), browser)
	return nil
}
