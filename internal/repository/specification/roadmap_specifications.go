package specification

import "gorm.io/gorm"

type ByRoadmapID struct {
	RoadmapID uint
}

func (s ByRoadmapID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("roadmap_id = ?", s.RoadmapID)
}

type ByTopicID struct {
	TopicID uint
}

func (s ByTopicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_id = ?", s.TopicID)
}

type ByInterviewer struct {
	Interviewer string
}

func (s ByInterviewer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("interviewer = ?", s.Interviewer)
}
