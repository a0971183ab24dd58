package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
	"github.com/csecompass/catalog/internal/pkg/metrics"
)

type ResourceService struct {
	source ports.ResourceSource
	logger zerolog.Logger
}

func NewResourceService(source ports.ResourceSource, logger zerolog.Logger) *ResourceService {
	return &ResourceService{source: source, logger: logger}
}

// Browse fetches the resource list once and filters it by category and
// search term. The fetched order is kept as is.
func (s *ResourceService) Browse(ctx context.Context, in ports.BrowseResourcesInput) (*ports.ResourceBrowser, error) {
	if !domain.IsCategorySelector(in.Category) {
		return nil, fmt.Errorf("browse resources: %w: %q", domain.ErrInvalidCategory, in.Category)
	}
	filter := domain.ResourceFilter{Category: in.Category, Search: in.Search}.Normalized()

	page := loadPage(ctx, s.logger, domain.CollectionResources, s.source.ListResources)
	all := page.Items()
	items := domain.FilterResources(all, filter.Category, filter.Search)

	metrics.FilteredResults.WithLabelValues(filter.Category).Observe(float64(len(items)))

	return &ports.ResourceBrowser{
		State:      page.State(),
		Category:   filter.Category,
		Search:     filter.Search,
		Categories: domain.CategorySelectors(),
		Items:      items,
		Total:      len(all),
	}, nil
}

// Get returns a single resource for its detail page.
func (s *ResourceService) Get(ctx context.Context, id string) (*domain.Resource, error) {
	r, err := s.source.GetResource(ctx, id)
	if errors.Is(err, domain.ErrResourceNotFound) {
		return nil, err
	}
	if err != nil {
		err = domain.NewFetchError(domain.CollectionResources, err)
		s.logger.Error().Err(err).Str("id", id).Msg("failed to get resource")
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return r, nil
}
