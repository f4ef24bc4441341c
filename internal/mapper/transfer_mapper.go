package mapper

import (
	"roadmap-be/internal/dto"
	"roadmap-be/internal/entity"
)

// CreateRoadmapRequestToEntity keeps topics and subtopics in request order.
func CreateRoadmapRequestToEntity(req *dto.CreateRoadmapRequest) *entity.Roadmap {
	if req == nil {
		return nil
	}

	topics := make([]*entity.Topic, 0, len(req.Topics))
	for _, t := range req.Topics {
		subtopics := make([]*entity.Subtopic, 0, len(t.Subtopics))
		for _, s := range t.Subtopics {
			subtopics = append(subtopics, &entity.Subtopic{Title: s.Title})
		}

		var score float64
		if t.ImportanceScore != nil {
			score = *t.ImportanceScore
		}
		topics = append(topics, &entity.Topic{
			Title:           t.Title,
			ImportanceScore: score,
			Subtopics:       subtopics,
		})
	}

	return &entity.Roadmap{
		Interviewer: req.Interviewer,
		Topic:       req.Topic,
		Topics:      topics,
	}
}

func SubtopicToResponse(s *entity.Subtopic) dto.SubtopicResponse {
	return dto.SubtopicResponse{
		Id:    s.Id,
		Title: s.Title,
	}
}

func TopicToResponse(t *entity.Topic) dto.TopicResponse {
	subtopics := make([]dto.SubtopicResponse, len(t.Subtopics))
	for i, s := range t.Subtopics {
		subtopics[i] = SubtopicToResponse(s)
	}
	return dto.TopicResponse{
		Title:           t.Title,
		ImportanceScore: t.ImportanceScore,
		Subtopics:       subtopics,
	}
}

func RoadmapToResponse(r *entity.Roadmap) *dto.RoadmapResponse {
	if r == nil {
		return nil
	}
	topics := make([]dto.TopicResponse, len(r.Topics))
	for i, t := range r.Topics {
		topics[i] = TopicToResponse(t)
	}
	return &dto.RoadmapResponse{
		Id:          r.Id,
		Interviewer: r.Interviewer,
		Topic:       r.Topic,
		CreatedAt:   r.CreatedAt,
		Topics:      topics,
	}
}

func RoadmapToSummaryResponse(r *entity.Roadmap) dto.RoadmapSummaryResponse {
	return dto.RoadmapSummaryResponse{
		Id:          r.Id,
		Topic:       r.Topic,
		Interviewer: r.Interviewer,
		CreatedAt:   r.CreatedAt,
	}
}

func RoadmapsToSummaryResponse(roadmaps []*entity.Roadmap) []dto.RoadmapSummaryResponse {
	res := make([]dto.RoadmapSummaryResponse, len(roadmaps))
	for i, r := range roadmaps {
		res[i] = RoadmapToSummaryResponse(r)
	}
	return res
}

func ChatMessageToResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:          m.Id,
		Subtopic:    m.SubtopicId,
		UserMessage: m.UserMessage,
		LlmResponse: m.LlmResponse,
		Timestamp:   m.Timestamp,
	}
}

func ChatMessagesToResponse(messages []*entity.ChatMessage) []dto.ChatMessageResponse {
	res := make([]dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		res[i] = ChatMessageToResponse(m)
	}
	return res
}
