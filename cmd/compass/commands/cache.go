package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/printer"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the Redis snapshot cache",
}

var cacheFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Drop the cached resource and roadmap snapshots",
	Long: `Drop the cached list snapshots so the next page view reads from the
record source. Requires REDIS_ENABLED=true.`,
	Args: cobra.NoArgs,
	RunE: runCacheFlush,
}

func init() {
	cacheCmd.AddCommand(cacheFlushCmd)
}

func runCacheFlush(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	_, _, sources, err := bootstrap(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer sources.Close(context.Background())

	if sources.Cache == nil {
		return printer.Error("Snapshot cache is not available",
			"Set REDIS_ENABLED=true and make sure REDIS_ADDR is reachable.")
	}
	if err := sources.Cache.Invalidate(ctx, domain.CollectionResources, domain.CollectionRoadmaps); err != nil {
		return printer.Error("Failed to flush snapshot cache", err.Error())
	}

	printer.Success(cmd.OutOrStdout(), "Flushed %s and %s snapshots", domain.CollectionResources, domain.CollectionRoadmaps)
	return nil
}
