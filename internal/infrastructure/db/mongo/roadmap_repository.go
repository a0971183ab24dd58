package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/csecompass/catalog/internal/core/domain"
)

const collectionRoadmaps = domain.CollectionRoadmaps

type RoadmapRepository struct {
	col *mongo.Collection
}

func NewRoadmapRepository(db *mongo.Database) *RoadmapRepository {
	return &RoadmapRepository{col: db.Collection(collectionRoadmaps)}
}

// ListRoadmaps returns all roadmaps, featured first then newest first.
func (r *RoadmapRepository) ListRoadmaps(ctx context.Context) ([]domain.Roadmap, error) {
	return findAll[domain.Roadmap](ctx, r.col)
}

// GetRoadmap retrieves a roadmap by id.
func (r *RoadmapRepository) GetRoadmap(ctx context.Context, id string) (*domain.Roadmap, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Roadmap
	err := r.col.FindOne(ctx, idFilter(id)).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoadmapNotFound
		}
		return nil, err
	}
	return &m, nil
}
