package unitofwork

import (
	"context"

	"roadmap-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RoadmapRepository() contract.RoadmapRepository
	TopicRepository() contract.TopicRepository
	SubtopicRepository() contract.SubtopicRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
