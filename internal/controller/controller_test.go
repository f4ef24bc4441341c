package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roadmap-be/internal/entity"
	"roadmap-be/internal/model"
	"roadmap-be/internal/pkg/logger"
	"roadmap-be/internal/pkg/serverutils"
	"roadmap-be/internal/repository/unitofwork"
	"roadmap-be/internal/service"
	"roadmap-be/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const aliceBody = `{
	"interviewer": "Alice",
	"topic": "Backend",
	"topics": [
		{"title": "DB", "importance_score": 0.9, "subtopics": [{"title": "Indexing"}, {"title": "Transactions"}]}
	]
}`

func newTestApp(t *testing.T, secret string) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := logger.NewNopLogger()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	auth := serverutils.NewJwtMiddleware(secret)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(log))
	api := app.Group("/api")
	NewRoadmapController(service.NewRoadmapService(uowFactory, nil, time.Minute, nil, log), auth).RegisterRoutes(api)
	NewChatMessageController(service.NewChatMessageService(uowFactory, nil, nil, log), auth).RegisterRoutes(api)
	return app, db
}

func do(t *testing.T, app *fiber.App, method, target, body string, headers ...string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

type roadmapJSON struct {
	Id          uint      `json:"id"`
	Interviewer string    `json:"interviewer"`
	Topic       string    `json:"topic"`
	CreatedAt   time.Time `json:"created_at"`
	Topics      []struct {
		Title           string  `json:"title"`
		ImportanceScore float64 `json:"importance_score"`
		Subtopics       []struct {
			Id    uint   `json:"id"`
			Title string `json:"title"`
		} `json:"subtopics"`
	} `json:"topics"`
}

func createAlice(t *testing.T, app *fiber.App) roadmapJSON {
	t.Helper()
	status, raw := do(t, app, http.MethodPost, "/api/roadmaps", aliceBody)
	require.Equal(t, http.StatusCreated, status, string(raw))
	var rm roadmapJSON
	require.NoError(t, json.Unmarshal(raw, &rm))
	return rm
}

func TestCreateAndShowRoadmap(t *testing.T) {
	app, _ := newTestApp(t, "")

	created := createAlice(t, app)
	assert.NotZero(t, created.Id)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, created.Topics, 1)
	require.Len(t, created.Topics[0].Subtopics, 2)

	status, raw := do(t, app, http.MethodGet, fmt.Sprintf("/api/roadmaps/%d", created.Id), "")
	require.Equal(t, http.StatusOK, status)
	var shown roadmapJSON
	require.NoError(t, json.Unmarshal(raw, &shown))
	assert.Equal(t, created.Topics, shown.Topics)

	status, raw = do(t, app, http.MethodGet, "/api/roadmaps", "")
	require.Equal(t, http.StatusOK, status)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.ElementsMatch(t, []string{"id", "topic", "interviewer", "created_at"}, keys(list[0]))
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestCreateRoadmapIgnoresReadOnlyAndUnknownFields(t *testing.T) {
	app, _ := newTestApp(t, "")

	body := `{"id": 77, "created_at": "1999-01-01T00:00:00Z", "colour": "red",
		"interviewer": "Alice", "topic": "Backend", "topics": []}`
	status, raw := do(t, app, http.MethodPost, "/api/roadmaps", body)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var rm roadmapJSON
	require.NoError(t, json.Unmarshal(raw, &rm))
	assert.NotEqual(t, uint(77), rm.Id)
	assert.True(t, rm.CreatedAt.Year() > 1999)
}

func TestCreateRoadmapMissingImportanceScore(t *testing.T) {
	app, db := newTestApp(t, "")

	body := `{"interviewer": "Alice", "topic": "Backend",
		"topics": [{"title": "DB", "subtopics": [{"title": "Indexing"}]}]}`
	status, raw := do(t, app, http.MethodPost, "/api/roadmaps", body)
	require.Equal(t, http.StatusBadRequest, status)

	var res serverutils.BaseResponse[any]
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.False(t, res.Success)
	assert.Contains(t, res.Errors, "topics[0].importance_score")

	var roadmaps, topics int64
	db.Model(&model.Roadmap{}).Count(&roadmaps)
	db.Model(&model.Topic{}).Count(&topics)
	assert.Zero(t, roadmaps)
	assert.Zero(t, topics)
}

func TestCreateRoadmapTypeMismatchNamesField(t *testing.T) {
	app, _ := newTestApp(t, "")

	body := `{"interviewer": "Alice", "topic": "Backend",
		"topics": [{"title": "DB", "importance_score": "very", "subtopics": []}]}`
	status, raw := do(t, app, http.MethodPost, "/api/roadmaps", body)
	require.Equal(t, http.StatusBadRequest, status)

	var res serverutils.BaseResponse[any]
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Contains(t, res.Errors, "topics.importance_score")
}

func TestDeleteRoadmapCascades(t *testing.T) {
	app, db := newTestApp(t, "")
	created := createAlice(t, app)

	status, raw := do(t, app, http.MethodPost, "/api/chat-messages",
		fmt.Sprintf(`{"subtopic": %d, "user_message": "hi"}`, created.Topics[0].Subtopics[0].Id))
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, _ = do(t, app, http.MethodDelete, fmt.Sprintf("/api/roadmaps/%d", created.Id), "")
	assert.Equal(t, http.StatusNoContent, status)

	var subtopics, messages int64
	db.Model(&model.Subtopic{}).Count(&subtopics)
	db.Model(&model.ChatMessage{}).Count(&messages)
	assert.Zero(t, subtopics)
	assert.Zero(t, messages)

	status, _ = do(t, app, http.MethodGet, fmt.Sprintf("/api/roadmaps/%d", created.Id), "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = do(t, app, http.MethodGet, "/api/roadmaps/abc", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateChatMessageValidation(t *testing.T) {
	app, _ := newTestApp(t, "")
	created := createAlice(t, app)

	status, raw := do(t, app, http.MethodPost, "/api/chat-messages", `{"subtopic": 1}`)
	require.Equal(t, http.StatusBadRequest, status)
	var res serverutils.BaseResponse[any]
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Contains(t, res.Errors, "user_message")

	status, raw = do(t, app, http.MethodPost, "/api/chat-messages", `{"user_message": "hi"}`)
	require.Equal(t, http.StatusBadRequest, status)
	res = serverutils.BaseResponse[any]{}
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Contains(t, res.Errors, "subtopic")

	status, raw = do(t, app, http.MethodPost, "/api/chat-messages", `{"subtopic": 4242, "user_message": "hi"}`)
	require.Equal(t, http.StatusBadRequest, status)
	res = serverutils.BaseResponse[any]{}
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Contains(t, res.Errors, "subtopic")

	status, raw = do(t, app, http.MethodPost, "/api/chat-messages",
		fmt.Sprintf(`{"subtopic": %d, "user_message": "hi", "timestamp": "1999-01-01T00:00:00Z"}`, created.Topics[0].Subtopics[1].Id))
	require.Equal(t, http.StatusCreated, status)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.ElementsMatch(t, []string{"id", "subtopic", "user_message", "llm_response", "timestamp"}, keys(msg))
	assert.Nil(t, msg["llm_response"])
	assert.NotContains(t, msg["timestamp"], "1999")
}

func TestListChatMessagesEnvelope(t *testing.T) {
	app, db := newTestApp(t, "")
	created := createAlice(t, app)
	subtopicId := created.Topics[0].Subtopics[0].Id

	repo := unitofwork.NewUnitOfWork(db).ChatMessageRepository()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Create(context.Background(), &entity.ChatMessage{
			SubtopicId:  subtopicId,
			UserMessage: fmt.Sprintf("m%02d", i),
			Timestamp:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	type page struct {
		Count    int64   `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  []struct {
			UserMessage string `json:"user_message"`
		} `json:"results"`
	}

	status, raw := do(t, app, http.MethodGet, "/api/chat-messages", "")
	require.Equal(t, http.StatusOK, status)
	var first page
	require.NoError(t, json.Unmarshal(raw, &first))
	assert.Equal(t, int64(15), first.Count)
	require.NotNil(t, first.Next)
	assert.True(t, strings.HasSuffix(*first.Next, "/api/chat-messages?page=2"), *first.Next)
	assert.Nil(t, first.Previous)
	assert.Len(t, first.Results, 10)
	assert.Equal(t, "m14", first.Results[0].UserMessage)

	status, raw = do(t, app, http.MethodGet, fmt.Sprintf("/api/subtopics/%d/chat-messages?page=2", subtopicId), "")
	require.Equal(t, http.StatusOK, status)
	var second page
	require.NoError(t, json.Unmarshal(raw, &second))
	assert.Nil(t, second.Next)
	require.NotNil(t, second.Previous)
	assert.NotContains(t, *second.Previous, "page=")
	require.Len(t, second.Results, 5)
	assert.Equal(t, "m04", second.Results[0].UserMessage)
	assert.Equal(t, "m00", second.Results[4].UserMessage)

	status, raw = do(t, app, http.MethodGet, "/api/chat-messages?page=3", "")
	assert.Equal(t, http.StatusNotFound, status)
	var res serverutils.BaseResponse[any]
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, "Invalid page.", res.Message)
}

func TestSetLlmResponseOnce(t *testing.T) {
	app, _ := newTestApp(t, "")
	created := createAlice(t, app)

	status, raw := do(t, app, http.MethodPost, "/api/chat-messages",
		fmt.Sprintf(`{"subtopic": %d, "user_message": "hi"}`, created.Topics[0].Subtopics[0].Id))
	require.Equal(t, http.StatusCreated, status)
	var msg struct {
		Id uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))

	target := fmt.Sprintf("/api/chat-messages/%d/llm-response", msg.Id)
	status, raw = do(t, app, http.MethodPatch, target, `{"llm_response": "hello"}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	status, _ = do(t, app, http.MethodPatch, target, `{"llm_response": "again"}`)
	assert.Equal(t, http.StatusConflict, status)
	status, _ = do(t, app, http.MethodPatch, target, `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestWriteRoutesRequireTokenWhenConfigured(t *testing.T) {
	const secret = "test-secret"
	app, _ := newTestApp(t, secret)

	status, _ := do(t, app, http.MethodPost, "/api/roadmaps", aliceBody)
	assert.Equal(t, http.StatusUnauthorized, status)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	status, _ = do(t, app, http.MethodPost, "/api/roadmaps", aliceBody, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusCreated, status)

	status, _ = do(t, app, http.MethodGet, "/api/roadmaps", "")
	assert.Equal(t, http.StatusOK, status)
}
