package contract

import (
	"context"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// SetLlmResponse writes the response only while it is still NULL and reports whether it did.
	SetLlmResponse(ctx context.Context, id uint, response string) (bool, error)
	DeleteBySubtopicId(ctx context.Context, subtopicId uint) error
	DeleteByTopicId(ctx context.Context, topicId uint) error
	DeleteByRoadmapId(ctx context.Context, roadmapId uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	// FindAll orders by timestamp ascending unless specs carry an OrderBy.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
