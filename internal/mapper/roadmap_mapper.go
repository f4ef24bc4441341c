package mapper

import (
	"roadmap-be/internal/entity"
	"roadmap-be/internal/model"
)

type RoadmapMapper struct{}

func NewRoadmapMapper() *RoadmapMapper {
	return &RoadmapMapper{}
}

// ToEntity maps the roadmap and whatever children were preloaded onto it.
func (m *RoadmapMapper) ToEntity(r *model.Roadmap) *entity.Roadmap {
	if r == nil {
		return nil
	}

	topics := make([]*entity.Topic, len(r.Topics))
	for i := range r.Topics {
		topics[i] = m.TopicToEntity(&r.Topics[i])
	}

	return &entity.Roadmap{
		Id:          r.Id,
		Interviewer: r.Interviewer,
		Topic:       r.Topic,
		CreatedAt:   r.CreatedAt,
		Topics:      topics,
	}
}

// ToModel maps scalar fields only. Children are written by their own repositories.
func (m *RoadmapMapper) ToModel(r *entity.Roadmap) *model.Roadmap {
	if r == nil {
		return nil
	}
	return &model.Roadmap{
		Id:          r.Id,
		Interviewer: r.Interviewer,
		Topic:       r.Topic,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *RoadmapMapper) ToEntities(roadmaps []*model.Roadmap) []*entity.Roadmap {
	entities := make([]*entity.Roadmap, len(roadmaps))
	for i, r := range roadmaps {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *RoadmapMapper) TopicToEntity(t *model.Topic) *entity.Topic {
	if t == nil {
		return nil
	}

	subtopics := make([]*entity.Subtopic, len(t.Subtopics))
	for i := range t.Subtopics {
		subtopics[i] = m.SubtopicToEntity(&t.Subtopics[i])
	}

	return &entity.Topic{
		Id:              t.Id,
		RoadmapId:       t.RoadmapId,
		Title:           t.Title,
		ImportanceScore: t.ImportanceScore,
		Subtopics:       subtopics,
	}
}

func (m *RoadmapMapper) TopicToModel(t *entity.Topic) *model.Topic {
	if t == nil {
		return nil
	}
	return &model.Topic{
		Id:              t.Id,
		RoadmapId:       t.RoadmapId,
		Title:           t.Title,
		ImportanceScore: t.ImportanceScore,
	}
}

func (m *RoadmapMapper) SubtopicToEntity(s *model.Subtopic) *entity.Subtopic {
	if s == nil {
		return nil
	}
	return &entity.Subtopic{
		Id:      s.Id,
		TopicId: s.TopicId,
		Title:   s.Title,
	}
}

func (m *RoadmapMapper) SubtopicToModel(s *entity.Subtopic) *model.Subtopic {
	if s == nil {
		return nil
	}
	return &model.Subtopic{
		Id:      s.Id,
		TopicId: s.TopicId,
		Title:   s.Title,
	}
}
