package model

type Topic struct {
	Id              uint    `gorm:"primaryKey;autoIncrement"`
	RoadmapId       uint    `gorm:"not null;index"`
	Title           string  `gorm:"type:varchar(255);not null"`
	ImportanceScore float64 `gorm:"not null"`

	Subtopics []Subtopic `gorm:"foreignKey:TopicId;constraint:OnDelete:CASCADE;"`
}

func (Topic) TableName() string {
	return "topics"
}

type Subtopic struct {
	Id      uint   `gorm:"primaryKey;autoIncrement"`
	TopicId uint   `gorm:"not null;index"`
	Title   string `gorm:"type:varchar(255);not null"`

	ChatMessages []ChatMessage `gorm:"foreignKey:SubtopicId;constraint:OnDelete:CASCADE;"`
}

func (Subtopic) TableName() string {
	return "subtopics"
}
