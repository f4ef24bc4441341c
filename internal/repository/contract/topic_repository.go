package contract

import (
	"context"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/repository/specification"
)

type TopicRepository interface {
	// Create inserts the topic row only; Subtopics are ignored.
	Create(ctx context.Context, topic *entity.Topic) error
	Delete(ctx context.Context, id uint) error
	DeleteByRoadmapId(ctx context.Context, roadmapId uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
