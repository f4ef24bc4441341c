package contract

import (
	"context"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/repository/specification"
)

type RoadmapRepository interface {
	// Create inserts the roadmap row only; Topics are ignored.
	Create(ctx context.Context, roadmap *entity.Roadmap) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Roadmap, error)
	// FindAll orders newest first unless specs carry an OrderBy.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Roadmap, error)
	// FindTree loads a roadmap with its topics and subtopics in insertion order.
	FindTree(ctx context.Context, id uint) (*entity.Roadmap, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
