package ports

import (
	"context"

	"github.com/csecompass/catalog/internal/core/domain"
)

// BrowseResourcesInput is the filter state of one resource browser view.
type BrowseResourcesInput struct {
	Category string
	Search   string
}

// ResourceBrowser is the result of one resource browser view.
type ResourceBrowser struct {
	State      domain.PageState
	Category   string
	Search     string
	Categories []string
	// Items is the filtered subsequence; Total counts the fetched set.
	Items []domain.Resource
	Total int
}

// Empty reports whether the "no matches" state should be shown.
func (b *ResourceBrowser) Empty() bool { return len(b.Items) == 0 }

// RoadmapBrowser is the result of one roadmap browser view.
type RoadmapBrowser struct {
	State    domain.PageState
	Featured []domain.Roadmap
	Others   []domain.Roadmap
}

// Empty reports whether no roadmap at all is available.
func (b *RoadmapBrowser) Empty() bool { return len(b.Featured) == 0 && len(b.Others) == 0 }

// ResourceService implements the resource browser use cases.
type ResourceService interface {
	// Browse fetches once and filters. A fetch failure is logged and yields an
	// empty browser in the Failed state, never an error. Only an invalid
	// category returns domain.ErrInvalidCategory.
	Browse(ctx context.Context, in BrowseResourcesInput) (*ResourceBrowser, error)
	Get(ctx context.Context, id string) (*domain.Resource, error)
}

// RoadmapService implements the roadmap browser use cases.
type RoadmapService interface {
	Browse(ctx context.Context) (*RoadmapBrowser, error)
	Get(ctx context.Context, id string) (*domain.Roadmap, error)
}
