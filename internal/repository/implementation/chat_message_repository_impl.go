package implementation

import (
	"context"
	"errors"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/mapper"
	"roadmap-be/internal/model"
	"roadmap-be/internal/repository/contract"
	"roadmap-be/internal/repository/scope"
	"roadmap-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	m := r.mapper.ChatMessageToModel(message)
	m.Timestamp = storedTime(m.Timestamp)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ChatMessageToEntity(m)
	return nil
}

func (r *ChatMessageRepositoryImpl) SetLlmResponse(ctx context.Context, id uint, response string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ChatMessage{}).
		Where("id = ? AND llm_response IS NULL", id).
		Update("llm_response", response)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ChatMessageRepositoryImpl) DeleteBySubtopicId(ctx context.Context, subtopicId uint) error {
	return r.db.WithContext(ctx).Where("subtopic_id = ?", subtopicId).Delete(&model.ChatMessage{}).Error
}

func (r *ChatMessageRepositoryImpl) DeleteByTopicId(ctx context.Context, topicId uint) error {
	subtopicIds := r.db.Model(&model.Subtopic{}).Select("id").Where("topic_id = ?", topicId)
	return r.db.WithContext(ctx).Where("subtopic_id IN (?)", subtopicIds).Delete(&model.ChatMessage{}).Error
}

func (r *ChatMessageRepositoryImpl) DeleteByRoadmapId(ctx context.Context, roadmapId uint) error {
	topicIds := r.db.Model(&model.Topic{}).Select("id").Where("roadmap_id = ?", roadmapId)
	subtopicIds := r.db.Model(&model.Subtopic{}).Select("id").Where("topic_id IN (?)", topicIds)
	return r.db.WithContext(ctx).Where("subtopic_id IN (?)", subtopicIds).Delete(&model.ChatMessage{}).Error
}

func (r *ChatMessageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	var m model.ChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatMessageToEntity(&m), nil
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var models []*model.ChatMessage
	query := r.db.WithContext(ctx)
	if !specification.HasOrdering(specs) {
		query = query.Scopes(scope.OrderByTimestampAsc)
	}
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChatMessagesToEntities(models), nil
}

func (r *ChatMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
