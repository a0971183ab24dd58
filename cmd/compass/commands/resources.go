package commands

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
	"github.com/csecompass/catalog/internal/core/service"
	"github.com/csecompass/catalog/internal/printer"
)

var (
	resourcesCategory string
	resourcesSearch   string
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Print resources, optionally filtered",
	Long: `Fetch the resource list once and print the entries that match the
category and the search text. The search is a case-insensitive substring
match on title or description.

Examples:
  compass resources
  compass resources --category "Web Dev"
  compass resources --category DSA --search graph`,
	Args: cobra.NoArgs,
	RunE: runResources,
}

func init() {
	resourcesCmd.Flags().StringVarP(&resourcesCategory, "category", "c", domain.CategoryAll,
		"Category: "+strings.Join(domain.CategorySelectors(), ", "))
	resourcesCmd.Flags().StringVarP(&resourcesSearch, "search", "s", "", "Search text")
}

func runResources(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	_, log, sources, err := bootstrap(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer sources.Close(context.Background())

	browser, err := service.NewResourceService(sources.Resources, log).Browse(ctx, ports.BrowseResourcesInput{
		Category: resourcesCategory,
		Search:   resourcesSearch,
	})
	if errors.Is(err, domain.ErrInvalidCategory) {
		return printer.Error("Unknown category "+resourcesCategory,
			"Use one of: "+strings.Join(domain.CategorySelectors(), ", "))
	}
	if err != nil {
		return printer.Error("Failed to list resources", err.Error())
	}

	printer.Resources(cmd.OutOrStdout(), browser)
	return nil
}
