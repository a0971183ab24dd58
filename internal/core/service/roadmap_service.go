package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
)

type RoadmapService struct {
	source ports.RoadmapSource
	logger zerolog.Logger
}

func NewRoadmapService(source ports.RoadmapSource, logger zerolog.Logger) *RoadmapService {
	return &RoadmapService{source: source, logger: logger}
}

// Browse fetches the roadmap list once and splits it into featured and the
// remainder.
func (s *RoadmapService) Browse(ctx context.Context) (*ports.RoadmapBrowser, error) {
	page := loadPage(ctx, s.logger, domain.CollectionRoadmaps, s.source.ListRoadmaps)
	featured, others := domain.PartitionRoadmaps(page.Items())

	return &ports.RoadmapBrowser{
		State:    page.State(),
		Featured: featured,
		Others:   others,
	}, nil
}

// Get returns a single roadmap for its detail page.
func (s *RoadmapService) Get(ctx context.Context, id string) (*domain.Roadmap, error) {
	r, err := s.source.GetRoadmap(ctx, id)
	if errors.Is(err, domain.ErrRoadmapNotFound) {
		return nil, err
	}
	if err != nil {
		err = domain.NewFetchError(domain.CollectionRoadmaps, err)
		s.logger.Error().Err(err).Str("id", id).Msg("failed to get roadmap")
		return nil, fmt.Errorf("get roadmap: %w", err)
	}
	return r, nil
}
