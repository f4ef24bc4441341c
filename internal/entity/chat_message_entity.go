package entity

import "time"

type ChatMessage struct {
	Id          uint
	SubtopicId  uint
	UserMessage string
	LlmResponse *string
	Timestamp   time.Time
}

func (m *ChatMessage) HasResponse() bool {
	return m.LlmResponse != nil
}

// SubtopicContext is the chain of titles above a subtopic, used to prompt the LLM.
type SubtopicContext struct {
	SubtopicId    uint
	SubtopicTitle string
	TopicTitle    string
	RoadmapTopic  string
	Interviewer   string
}
