package specification

import "gorm.io/gorm"

type BySubtopicID struct {
	SubtopicID uint
}

func (s BySubtopicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subtopic_id = ?", s.SubtopicID)
}

// AwaitingResponse matches messages whose llm_response has not been written yet.
type AwaitingResponse struct{}

func (s AwaitingResponse) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("llm_response IS NULL")
}
