package contract

import (
	"context"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/repository/specification"
)

type SubtopicRepository interface {
	Create(ctx context.Context, subtopic *entity.Subtopic) error
	Delete(ctx context.Context, id uint) error
	DeleteByTopicId(ctx context.Context, topicId uint) error
	DeleteByRoadmapId(ctx context.Context, roadmapId uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subtopic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subtopic, error)
	FindContext(ctx context.Context, id uint) (*entity.SubtopicContext, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
