package mapper

import (
	"roadmap-be/internal/entity"
	"roadmap-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:          msg.Id,
		SubtopicId:  msg.SubtopicId,
		UserMessage: msg.UserMessage,
		LlmResponse: msg.LlmResponse,
		Timestamp:   msg.Timestamp,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:          msg.Id,
		SubtopicId:  msg.SubtopicId,
		UserMessage: msg.UserMessage,
		LlmResponse: msg.LlmResponse,
		Timestamp:   msg.Timestamp,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, msg := range messages {
		entities[i] = m.ChatMessageToEntity(msg)
	}
	return entities
}
