package implementation

import (
	"context"
	"errors"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/mapper"
	"roadmap-be/internal/model"
	"roadmap-be/internal/repository/contract"
	"roadmap-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubtopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoadmapMapper
}

func NewSubtopicRepository(db *gorm.DB) contract.SubtopicRepository {
	return &SubtopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoadmapMapper(),
	}
}

func (r *SubtopicRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubtopicRepositoryImpl) Create(ctx context.Context, subtopic *entity.Subtopic) error {
	m := r.mapper.SubtopicToModel(subtopic)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	subtopic.Id = m.Id
	return nil
}

func (r *SubtopicRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Subtopic{}, id).Error
}

func (r *SubtopicRepositoryImpl) DeleteByTopicId(ctx context.Context, topicId uint) error {
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByTopicID{TopicID: topicId})
	return query.Delete(&model.Subtopic{}).Error
}

func (r *SubtopicRepositoryImpl) DeleteByRoadmapId(ctx context.Context, roadmapId uint) error {
	topicIds := r.db.Model(&model.Topic{}).Select("id").Where("roadmap_id = ?", roadmapId)
	return r.db.WithContext(ctx).Where("topic_id IN (?)", topicIds).Delete(&model.Subtopic{}).Error
}

func (r *SubtopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subtopic, error) {
	var m model.Subtopic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubtopicToEntity(&m), nil
}

func (r *SubtopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subtopic, error) {
	var models []*model.Subtopic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subtopic, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SubtopicToEntity(m)
	}
	return entities, nil
}

func (r *SubtopicRepositoryImpl) FindContext(ctx context.Context, id uint) (*entity.SubtopicContext, error) {
	var row entity.SubtopicContext
	res := r.db.WithContext(ctx).
		Table("subtopics AS s").
		Select("s.id AS subtopic_id, s.title AS subtopic_title, t.title AS topic_title, r.topic AS roadmap_topic, r.interviewer AS interviewer").
		Joins("JOIN topics t ON t.id = s.topic_id").
		Joins("JOIN roadmaps r ON r.id = t.roadmap_id").
		Where("s.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *SubtopicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subtopic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
