package model

import "time"

type ChatMessage struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	SubtopicId  uint      `gorm:"not null;index"`
	UserMessage string    `gorm:"type:text;not null"`
	LlmResponse *string   `gorm:"type:text"`
	Timestamp   time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
