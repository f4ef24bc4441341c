package implementation

import (
	"context"
	"testing"
	"time"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/model"
	"roadmap-be/internal/repository/specification"
	"roadmap-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	roadmap   *entity.Roadmap
	topic     *entity.Topic
	subtopics []*entity.Subtopic
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()

	roadmap := &entity.Roadmap{Interviewer: "Alice", Topic: "Backend"}
	require.NoError(t, NewRoadmapRepository(db).Create(ctx, roadmap))

	topic := &entity.Topic{RoadmapId: roadmap.Id, Title: "DB", ImportanceScore: 0.9}
	require.NoError(t, NewTopicRepository(db).Create(ctx, topic))

	var subtopics []*entity.Subtopic
	for _, title := range []string{"Indexing", "Transactions"} {
		s := &entity.Subtopic{TopicId: topic.Id, Title: title}
		require.NoError(t, NewSubtopicRepository(db).Create(ctx, s))
		subtopics = append(subtopics, s)
	}
	return fixture{roadmap: roadmap, topic: topic, subtopics: subtopics}
}

func TestFindTreeKeepsInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seed(t, db)

	tree, err := NewRoadmapRepository(db).FindTree(context.Background(), f.roadmap.Id)
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.False(t, tree.CreatedAt.IsZero())
	require.Len(t, tree.Topics, 1)
	assert.Equal(t, 0.9, tree.Topics[0].ImportanceScore)
	require.Len(t, tree.Topics[0].Subtopics, 2)
	assert.Equal(t, "Indexing", tree.Topics[0].Subtopics[0].Title)
	assert.Equal(t, "Transactions", tree.Topics[0].Subtopics[1].Title)

	missing, err := NewRoadmapRepository(db).FindTree(context.Background(), f.roadmap.Id+1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindContext(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seed(t, db)

	sc, err := NewSubtopicRepository(db).FindContext(context.Background(), f.subtopics[1].Id)
	require.NoError(t, err)
	assert.Equal(t, &entity.SubtopicContext{
		SubtopicId:    f.subtopics[1].Id,
		SubtopicTitle: "Transactions",
		TopicTitle:    "DB",
		RoadmapTopic:  "Backend",
		Interviewer:   "Alice",
	}, sc)

	sc, err = NewSubtopicRepository(db).FindContext(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, sc)
}

func TestChatMessagesDefaultToOldestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seed(t, db)
	repo := NewChatMessageRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		require.NoError(t, repo.Create(ctx, &entity.ChatMessage{
			SubtopicId:  f.subtopics[0].Id,
			UserMessage: []string{"late", "early", "middle"}[i],
			Timestamp:   base.Add(offset),
		}))
	}

	all, err := repo.FindAll(ctx, specification.BySubtopicID{SubtopicID: f.subtopics[0].Id})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "early", all[0].UserMessage)
	assert.Equal(t, "late", all[2].UserMessage)

	newest, err := repo.FindAll(ctx, specification.OrderBy{Field: "timestamp", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, "late", newest[0].UserMessage)

	pending, err := repo.Count(ctx, specification.AwaitingResponse{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), pending)
}

func TestSetLlmResponseOnlyWhenNull(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seed(t, db)
	repo := NewChatMessageRepository(db)
	ctx := context.Background()

	msg := &entity.ChatMessage{SubtopicId: f.subtopics[0].Id, UserMessage: "why?"}
	require.NoError(t, repo.Create(ctx, msg))
	assert.False(t, msg.Timestamp.IsZero())

	written, err := repo.SetLlmResponse(ctx, msg.Id, "because")
	require.NoError(t, err)
	assert.True(t, written)

	written, err = repo.SetLlmResponse(ctx, msg.Id, "overwrite")
	require.NoError(t, err)
	assert.False(t, written)

	stored, err := repo.FindOne(ctx, specification.ByID{ID: msg.Id})
	require.NoError(t, err)
	require.True(t, stored.HasResponse())
	assert.Equal(t, "because", *stored.LlmResponse)
}

func TestDeleteByParentRemovesDescendants(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seed(t, db)
	other := seed(t, db)
	ctx := context.Background()

	require.NoError(t, NewChatMessageRepository(db).Create(ctx, &entity.ChatMessage{SubtopicId: f.subtopics[0].Id, UserMessage: "a"}))
	require.NoError(t, NewChatMessageRepository(db).Create(ctx, &entity.ChatMessage{SubtopicId: other.subtopics[0].Id, UserMessage: "b"}))

	require.NoError(t, NewChatMessageRepository(db).DeleteByRoadmapId(ctx, f.roadmap.Id))
	require.NoError(t, NewSubtopicRepository(db).DeleteByRoadmapId(ctx, f.roadmap.Id))
	require.NoError(t, NewTopicRepository(db).DeleteByRoadmapId(ctx, f.roadmap.Id))

	messages, err := NewChatMessageRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), messages)
	subtopics, err := NewSubtopicRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), subtopics)
	topics, err := NewTopicRepository(db).Count(ctx, specification.ByRoadmapID{RoadmapID: other.roadmap.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), topics)
}

func TestForeignKeysCascadeInStorage(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	require.NoError(t, NewChatMessageRepository(db).Create(ctx, &entity.ChatMessage{SubtopicId: f.subtopics[0].Id, UserMessage: "a"}))

	// Only the root row; the FK constraints take the rest.
	require.NoError(t, NewRoadmapRepository(db).Delete(ctx, f.roadmap.Id))

	var topics, subtopics, messages int64
	db.Model(&model.Topic{}).Count(&topics)
	db.Model(&model.Subtopic{}).Count(&subtopics)
	db.Model(&model.ChatMessage{}).Count(&messages)
	assert.Zero(t, topics)
	assert.Zero(t, subtopics)
	assert.Zero(t, messages)
}

func TestCreateStoresMicrosecondTimestamps(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	f := seed(t, db)

	assert.Zero(t, f.roadmap.CreatedAt.Nanosecond()%1000)
	found, err := NewRoadmapRepository(db).FindOne(ctx, specification.ByID{ID: f.roadmap.Id})
	require.NoError(t, err)
	assert.True(t, f.roadmap.CreatedAt.Equal(found.CreatedAt))

	at := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	msg := &entity.ChatMessage{SubtopicId: f.subtopics[0].Id, UserMessage: "when?", Timestamp: at}
	require.NoError(t, NewChatMessageRepository(db).Create(ctx, msg))
	assert.True(t, msg.Timestamp.Equal(at.Truncate(time.Microsecond)))

	stored, err := NewChatMessageRepository(db).FindOne(ctx, specification.ByID{ID: msg.Id})
	require.NoError(t, err)
	assert.True(t, msg.Timestamp.Equal(stored.Timestamp))
}
