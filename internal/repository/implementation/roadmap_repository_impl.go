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
	"gorm.io/gorm/clause"
)

type RoadmapRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoadmapMapper
}

func NewRoadmapRepository(db *gorm.DB) contract.RoadmapRepository {
	return &RoadmapRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoadmapMapper(),
	}
}

func (r *RoadmapRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoadmapRepositoryImpl) Create(ctx context.Context, roadmap *entity.Roadmap) error {
	m := r.mapper.ToModel(roadmap)
	m.CreatedAt = storedTime(m.CreatedAt)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	roadmap.Id = m.Id
	roadmap.CreatedAt = m.CreatedAt
	return nil
}

func (r *RoadmapRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Roadmap{}, id).Error
}

func (r *RoadmapRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Roadmap, error) {
	var m model.Roadmap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoadmapRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Roadmap, error) {
	var models []*model.Roadmap
	query := r.db.WithContext(ctx)
	if !specification.HasOrdering(specs) {
		query = query.Scopes(scope.OrderByCreatedDesc)
	}
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RoadmapRepositoryImpl) FindTree(ctx context.Context, id uint) (*entity.Roadmap, error) {
	var m model.Roadmap
	err := r.db.WithContext(ctx).
		Preload("Topics", scope.OrderByIDAsc).
		Preload("Topics.Subtopics", scope.OrderByIDAsc).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoadmapRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Roadmap{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
