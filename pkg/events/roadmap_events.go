package events

const (
	TypeRoadmapCreated      = "ROADMAP_CREATED"
	TypeRoadmapDeleted      = "ROADMAP_DELETED"
	TypeChatMessageAnswered = "CHAT_MESSAGE_ANSWERED"
)

type RoadmapCreatedEvent struct {
	occurred
	RoadmapId uint   `json:"roadmap_id"`
	Topic     string `json:"topic"`
	Rows      int    `json:"rows"` // roadmap, topic and subtopic rows inserted
}

func RoadmapCreated(roadmapId uint, topic string, rows int) RoadmapCreatedEvent {
	return RoadmapCreatedEvent{occurred: now(), RoadmapId: roadmapId, Topic: topic, Rows: rows}
}

func (RoadmapCreatedEvent) EventType() string { return TypeRoadmapCreated }
func (e RoadmapCreatedEvent) Payload() any    { return e }

type RoadmapDeletedEvent struct {
	occurred
	RoadmapId uint `json:"roadmap_id"`
}

func RoadmapDeleted(roadmapId uint) RoadmapDeletedEvent {
	return RoadmapDeletedEvent{occurred: now(), RoadmapId: roadmapId}
}

func (RoadmapDeletedEvent) EventType() string { return TypeRoadmapDeleted }
func (e RoadmapDeletedEvent) Payload() any    { return e }

type ChatMessageAnsweredEvent struct {
	occurred
	ChatMessageId uint `json:"chat_message_id"`
	SubtopicId    uint `json:"subtopic_id"`
}

func ChatMessageAnswered(messageId, subtopicId uint) ChatMessageAnsweredEvent {
	return ChatMessageAnsweredEvent{occurred: now(), ChatMessageId: messageId, SubtopicId: subtopicId}
}

func (ChatMessageAnsweredEvent) EventType() string { return TypeChatMessageAnswered }
func (e ChatMessageAnsweredEvent) Payload() any    { return e }
