package dto

import "time"

type CreateChatMessageRequest struct {
	Subtopic    *uint   `json:"subtopic" validate:"required"`
	UserMessage string  `json:"user_message" validate:"required"`
	LlmResponse *string `json:"llm_response"`
}

type SetLlmResponseRequest struct {
	LlmResponse *string `json:"llm_response" validate:"required"`
}

type ChatMessageResponse struct {
	Id          uint      `json:"id"`
	Subtopic    uint      `json:"subtopic"`
	UserMessage string    `json:"user_message"`
	LlmResponse *string   `json:"llm_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// ListChatMessagesQuery is bound from the query string.
type ListChatMessagesQuery struct {
	Page     string `query:"page"`
	Subtopic string `query:"subtopic"`
}

// PendingLlmResponseMessage is published when a message still needs an answer.
type PendingLlmResponseMessage struct {
	ChatMessageId uint   `json:"chat_message_id"`
	CorrelationId string `json:"correlation_id"`
}
