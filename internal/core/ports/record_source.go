package ports

import (
	"context"

	"github.com/csecompass/catalog/internal/core/domain"
)

// ResourceSource reads resources from the hosted table store.
type ResourceSource interface {
	// ListResources returns every resource ordered by featured DESC,
	// created_at DESC. Callers must not re-sort.
	ListResources(ctx context.Context) ([]domain.Resource, error)
	// GetResource returns domain.ErrResourceNotFound for unknown ids.
	GetResource(ctx context.Context, id string) (*domain.Resource, error)
}

// RoadmapSource reads roadmaps from the hosted table store.
type RoadmapSource interface {
	// ListRoadmaps returns every roadmap ordered by featured DESC,
	// created_at DESC. Callers must not re-sort.
	ListRoadmaps(ctx context.Context) ([]domain.Roadmap, error)
	// GetRoadmap returns domain.ErrRoadmapNotFound for unknown ids.
	GetRoadmap(ctx context.Context, id string) (*domain.Roadmap, error)
}

// Pinger is implemented by backends that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
