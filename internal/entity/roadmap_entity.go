package entity

import "time"

type Roadmap struct {
	Id          uint
	Interviewer string
	Topic       string
	CreatedAt   time.Time
	Topics      []*Topic
}

type Topic struct {
	Id              uint
	RoadmapId       uint
	Title           string
	ImportanceScore float64
	Subtopics       []*Subtopic
}

type Subtopic struct {
	Id      uint
	TopicId uint
	Title   string
}

// RowCount is the number of rows the tree occupies once persisted.
func (r *Roadmap) RowCount() int {
	count := 1
	for _, t := range r.Topics {
		count += 1 + len(t.Subtopics)
	}
	return count
}
