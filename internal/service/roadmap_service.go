package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roadmap-be/internal/dto"
	"roadmap-be/internal/entity"
	"roadmap-be/internal/mapper"
	"roadmap-be/internal/pkg/apperror"
	"roadmap-be/internal/pkg/logger"
	"roadmap-be/internal/repository/specification"
	"roadmap-be/internal/repository/unitofwork"
	"roadmap-be/pkg/cache"
	"roadmap-be/pkg/events"

	"github.com/google/uuid"
)

type IRoadmapService interface {
	Create(ctx context.Context, req *dto.CreateRoadmapRequest) (*dto.RoadmapResponse, error)
	GetAll(ctx context.Context, interviewer string) ([]dto.RoadmapSummaryResponse, error)
	Show(ctx context.Context, id uint) (*dto.RoadmapResponse, error)
	Delete(ctx context.Context, id uint) error
	DeleteTopic(ctx context.Context, id uint) error
	ShowSubtopic(ctx context.Context, id uint) (*dto.SubtopicResponse, error)
	DeleteSubtopic(ctx context.Context, id uint) error
}

type roadmapService struct {
	uowFactory     unitofwork.RepositoryFactory
	cache          cache.Cache
	cacheTTL       time.Duration
	eventPublisher IEventPublisher
	logger         logger.ILogger
}

func NewRoadmapService(
	uowFactory unitofwork.RepositoryFactory,
	roadmapCache cache.Cache,
	cacheTTL time.Duration,
	eventPublisher IEventPublisher,
	log logger.ILogger,
) IRoadmapService {
	if roadmapCache == nil {
		roadmapCache = cache.NewNoop()
	}
	return &roadmapService{
		uowFactory:     uowFactory,
		cache:          roadmapCache,
		cacheTTL:       cacheTTL,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func roadmapCacheKey(id uint) string {
	return fmt.Sprintf("roadmap:%d", id)
}

func roadmapGenerationKey(id uint) string {
	return fmt.Sprintf("roadmap:%d:gen", id)
}

// cachedRoadmap is only served while Generation matches the roadmap's current generation.
type cachedRoadmap struct {
	Generation string               `json:"generation"`
	Roadmap    *dto.RoadmapResponse `json:"roadmap"`
}

// Create persists the roadmap, then its topics, then their subtopics, in one transaction.
func (s *roadmapService) Create(ctx context.Context, req *dto.CreateRoadmapRequest) (*dto.RoadmapResponse, error) {
	roadmap := mapper.CreateRoadmapRequestToEntity(req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RoadmapRepository().Create(ctx, roadmap); err != nil {
		return nil, fmt.Errorf("insert roadmap: %w", err)
	}
	for _, topic := range roadmap.Topics {
		topic.RoadmapId = roadmap.Id
		if err := uow.TopicRepository().Create(ctx, topic); err != nil {
			return nil, fmt.Errorf("insert topic %q: %w", topic.Title, err)
		}
		for _, subtopic := range topic.Subtopics {
			subtopic.TopicId = topic.Id
			if err := uow.SubtopicRepository().Create(ctx, subtopic); err != nil {
				return nil, fmt.Errorf("insert subtopic %q: %w", subtopic.Title, err)
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit roadmap: %w", err)
	}

	s.logger.Info("roadmap", "roadmap created", map[string]interface{}{
		"roadmap_id": roadmap.Id,
		"rows":       roadmap.RowCount(),
	})
	publishEvent(ctx, s.eventPublisher, s.logger, events.RoadmapCreated(roadmap.Id, roadmap.Topic, roadmap.RowCount()))

	return mapper.RoadmapToResponse(roadmap), nil
}

// GetAll lists roadmaps newest first, optionally for one interviewer.
func (s *roadmapService) GetAll(ctx context.Context, interviewer string) ([]dto.RoadmapSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if interviewer != "" {
		specs = append(specs, specification.ByInterviewer{Interviewer: interviewer})
	}
	roadmaps, err := uow.RoadmapRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return mapper.RoadmapsToSummaryResponse(roadmaps), nil
}

// Show serves the roadmap tree from cache when possible. The generation is read
// before the database so a tree loaded ahead of a concurrent delete is stored
// under a generation that delete has already retired.
func (s *roadmapService) Show(ctx context.Context, id uint) (*dto.RoadmapResponse, error) {
	key := roadmapCacheKey(id)
	gen := s.generation(ctx, id)
	if cached, ok := s.fromCache(ctx, key, gen); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	roadmap, err := uow.RoadmapRepository().FindTree(ctx, id)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, apperror.NotFound("roadmap")
	}

	res := mapper.RoadmapToResponse(roadmap)
	if raw, err := json.Marshal(cachedRoadmap{Generation: gen, Roadmap: res}); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.logger.Warn("roadmap", "cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
	return res, nil
}

func (s *roadmapService) generation(ctx context.Context, id uint) string {
	raw, ok, err := s.cache.Get(ctx, roadmapGenerationKey(id))
	if err != nil || !ok {
		return ""
	}
	return string(raw)
}

func (s *roadmapService) fromCache(ctx context.Context, key, gen string) (*dto.RoadmapResponse, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("roadmap", "cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var entry cachedRoadmap
	if err := json.Unmarshal(raw, &entry); err != nil || entry.Roadmap == nil {
		return nil, false
	}
	if entry.Generation != gen {
		return nil, false
	}
	return entry.Roadmap, true
}

// invalidate retires the current generation, then drops the cached tree.
// The generation outlives any entry written under the old one.
func (s *roadmapService) invalidate(ctx context.Context, roadmapId uint) {
	var genTTL time.Duration
	if s.cacheTTL > 0 {
		genTTL = 2 * s.cacheTTL
	}
	if err := s.cache.Set(ctx, roadmapGenerationKey(roadmapId), []byte(uuid.NewString()), genTTL); err != nil {
		s.logger.Warn("roadmap", "cache generation bump failed", map[string]interface{}{"roadmap_id": roadmapId, "error": err.Error()})
	}
	if err := s.cache.Delete(ctx, roadmapCacheKey(roadmapId)); err != nil {
		s.logger.Warn("roadmap", "cache invalidation failed", map[string]interface{}{"roadmap_id": roadmapId, "error": err.Error()})
	}
}

// Delete removes the roadmap and every descendant, leaves first.
func (s *roadmapService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	roadmap, err := uow.RoadmapRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if roadmap == nil {
		return apperror.NotFound("roadmap")
	}

	if err := uow.ChatMessageRepository().DeleteByRoadmapId(ctx, id); err != nil {
		return err
	}
	if err := uow.SubtopicRepository().DeleteByRoadmapId(ctx, id); err != nil {
		return err
	}
	if err := uow.TopicRepository().DeleteByRoadmapId(ctx, id); err != nil {
		return err
	}
	if err := uow.RoadmapRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	publishEvent(ctx, s.eventPublisher, s.logger, events.RoadmapDeleted(id))
	return nil
}

func (s *roadmapService) DeleteTopic(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if topic == nil {
		return apperror.NotFound("topic")
	}

	if err := uow.ChatMessageRepository().DeleteByTopicId(ctx, id); err != nil {
		return err
	}
	if err := uow.SubtopicRepository().DeleteByTopicId(ctx, id); err != nil {
		return err
	}
	if err := uow.TopicRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, topic.RoadmapId)
	return nil
}

func (s *roadmapService) ShowSubtopic(ctx context.Context, id uint) (*dto.SubtopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subtopic, err := uow.SubtopicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if subtopic == nil {
		return nil, apperror.NotFound("subtopic")
	}
	res := mapper.SubtopicToResponse(subtopic)
	return &res, nil
}

func (s *roadmapService) DeleteSubtopic(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	subtopic, err := uow.SubtopicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if subtopic == nil {
		return apperror.NotFound("subtopic")
	}
	var topic *entity.Topic
	if topic, err = uow.TopicRepository().FindOne(ctx, specification.ByID{ID: subtopic.TopicId}); err != nil {
		return err
	}

	if err := uow.ChatMessageRepository().DeleteBySubtopicId(ctx, id); err != nil {
		return err
	}
	if err := uow.SubtopicRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if topic != nil {
		s.invalidate(ctx, topic.RoadmapId)
	}
	return nil
}
