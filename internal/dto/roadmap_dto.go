package dto

import "time"

// Requests. id and created_at are not decoded: they are server-assigned.

type CreateRoadmapRequest struct {
	Interviewer string               `json:"interviewer" validate:"required,max=255"`
	Topic       string               `json:"topic" validate:"required,max=255"`
	Topics      []CreateTopicRequest `json:"topics" validate:"required,dive"`
}

type CreateTopicRequest struct {
	Title           string                  `json:"title" validate:"required,max=255"`
	ImportanceScore *float64                `json:"importance_score" validate:"required"`
	Subtopics       []CreateSubtopicRequest `json:"subtopics" validate:"required,dive"`
}

type CreateSubtopicRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// Responses

type SubtopicResponse struct {
	Id    uint   `json:"id"`
	Title string `json:"title"`
}

type TopicResponse struct {
	Title           string             `json:"title"`
	ImportanceScore float64            `json:"importance_score"`
	Subtopics       []SubtopicResponse `json:"subtopics"`
}

type RoadmapResponse struct {
	Id          uint            `json:"id"`
	Interviewer string          `json:"interviewer"`
	Topic       string          `json:"topic"`
	CreatedAt   time.Time       `json:"created_at"`
	Topics      []TopicResponse `json:"topics"`
}

type RoadmapSummaryResponse struct {
	Id          uint      `json:"id"`
	Topic       string    `json:"topic"`
	Interviewer string    `json:"interviewer"`
	CreatedAt   time.Time `json:"created_at"`
}
