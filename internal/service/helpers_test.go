package service

import (
	"context"
	"sync"
	"testing"

	"roadmap-be/internal/dto"
	"roadmap-be/internal/model"
	"roadmap-be/pkg/events"

	"gorm.io/gorm"
)

type recordingEventPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingEventPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingEventPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.EventType()
	}
	return types
}

type recordingPublisherService struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *recordingPublisherService) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func score(v float64) *float64 {
	return &v
}

func aliceRequest() *dto.CreateRoadmapRequest {
	return &dto.CreateRoadmapRequest{
		Interviewer: "Alice",
		Topic:       "Backend",
		Topics: []dto.CreateTopicRequest{
			{
				Title:           "DB",
				ImportanceScore: score(0.9),
				Subtopics: []dto.CreateSubtopicRequest{
					{Title: "Indexing"},
					{Title: "Transactions"},
				},
			},
		},
	}
}

type rowCounts struct {
	Roadmaps, Topics, Subtopics, ChatMessages int64
}

func countRows(t *testing.T, db *gorm.DB) rowCounts {
	t.Helper()
	var c rowCounts
	db.Model(&model.Roadmap{}).Count(&c.Roadmaps)
	db.Model(&model.Topic{}).Count(&c.Topics)
	db.Model(&model.Subtopic{}).Count(&c.Subtopics)
	db.Model(&model.ChatMessage{}).Count(&c.ChatMessages)
	return c
}
