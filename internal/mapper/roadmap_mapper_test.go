package mapper

import (
	"testing"
	"time"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapMapperToEntityKeepsChildOrder(t *testing.T) {
	created := time.Date(2025, 5, 24, 5, 45, 0, 0, time.UTC)
	m := &model.Roadmap{
		Id:          3,
		Interviewer: "Alice",
		Topic:       "Backend",
		CreatedAt:   created,
		Topics: []model.Topic{
			{Id: 10, RoadmapId: 3, Title: "DB", ImportanceScore: 8, Subtopics: []model.Subtopic{
				{Id: 100, TopicId: 10, Title: "Indexing"},
				{Id: 101, TopicId: 10, Title: "Transactions"},
			}},
			{Id: 11, RoadmapId: 3, Title: "Caching", ImportanceScore: 5},
		},
	}

	e := NewRoadmapMapper().ToEntity(m)

	require.Len(t, e.Topics, 2)
	assert.Equal(t, created, e.CreatedAt)
	assert.Equal(t, "DB", e.Topics[0].Title)
	assert.Equal(t, []string{"Indexing", "Transactions"}, []string{e.Topics[0].Subtopics[0].Title, e.Topics[0].Subtopics[1].Title})
	assert.Empty(t, e.Topics[1].Subtopics)
	assert.Equal(t, 5, e.RowCount())
}

func TestRoadmapMapperToModelDropsChildren(t *testing.T) {
	e := &entity.Roadmap{Interviewer: "Bob", Topic: "Go", Topics: []*entity.Topic{{Title: "Channels"}}}

	m := NewRoadmapMapper().ToModel(e)

	assert.Equal(t, "Bob", m.Interviewer)
	assert.Nil(t, m.Topics)
	assert.Nil(t, NewRoadmapMapper().ToModel(nil))
}

func TestChatMapperRoundTrip(t *testing.T) {
	resp := "B-trees"
	e := &entity.ChatMessage{Id: 1, SubtopicId: 2, UserMessage: "What index?", LlmResponse: &resp, Timestamp: time.Unix(100, 0)}

	mp := NewChatMapper()
	back := mp.ChatMessageToEntity(mp.ChatMessageToModel(e))

	assert.Equal(t, e, back)
	assert.True(t, back.HasResponse())
}
