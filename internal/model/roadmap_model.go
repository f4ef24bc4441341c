package model

import "time"

type Roadmap struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Interviewer string    `gorm:"type:varchar(255);not null"`
	Topic       string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`

	Topics []Topic `gorm:"foreignKey:RoadmapId;constraint:OnDelete:CASCADE;"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}
