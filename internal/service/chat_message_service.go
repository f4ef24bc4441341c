package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"roadmap-be/internal/dto"
	"roadmap-be/internal/entity"
	"roadmap-be/internal/mapper"
	"roadmap-be/internal/pkg/apperror"
	"roadmap-be/internal/pkg/logger"
	"roadmap-be/internal/repository/specification"
	"roadmap-be/internal/repository/unitofwork"
	"roadmap-be/pkg/events"

	"github.com/google/uuid"
)

// ChatMessagePageSize is fixed; callers cannot override it.
const ChatMessagePageSize = 10

var errInvalidPage = &apperror.Error{Code: http.StatusNotFound, Message: "Invalid page."}

type ChatMessagePage struct {
	Number      int
	Count       int64
	HasNext     bool
	HasPrevious bool
	Results     []dto.ChatMessageResponse
}

type IChatMessageService interface {
	Create(ctx context.Context, req *dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error)
	List(ctx context.Context, query dto.ListChatMessagesQuery) (*ChatMessagePage, error)
	Show(ctx context.Context, id uint) (*dto.ChatMessageResponse, error)
	SetLlmResponse(ctx context.Context, id uint, response string) (*dto.ChatMessageResponse, error)
}

type chatMessageService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService // nil when no LLM is configured
	eventPublisher   IEventPublisher
	logger           logger.ILogger
}

func NewChatMessageService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher IEventPublisher,
	log logger.ILogger,
) IChatMessageService {
	return &chatMessageService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *chatMessageService) Create(ctx context.Context, req *dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subtopic, err := uow.SubtopicRepository().FindOne(ctx, specification.ByID{ID: *req.Subtopic})
	if err != nil {
		return nil, err
	}
	if subtopic == nil {
		return nil, apperror.FieldError("subtopic", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *req.Subtopic))
	}

	msg := entity.ChatMessage{
		SubtopicId:  subtopic.Id,
		UserMessage: req.UserMessage,
		LlmResponse: req.LlmResponse,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &msg); err != nil {
		return nil, err
	}

	if !msg.HasResponse() && s.publisherService != nil {
		s.requestResponse(ctx, msg.Id)
	}

	res := mapper.ChatMessageToResponse(&msg)
	return &res, nil
}

// requestResponse queues the message for the LLM responder. Failure leaves llm_response null.
func (s *chatMessageService) requestResponse(ctx context.Context, messageId uint) {
	payload, err := json.Marshal(dto.PendingLlmResponseMessage{
		ChatMessageId: messageId,
		CorrelationId: uuid.NewString(),
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("chat_message", "failed to queue llm response", map[string]interface{}{
			"chat_message_id": messageId,
			"error":           err.Error(),
		})
	}
}

func parsePage(raw string, count int64) (int, error) {
	lastPage := int((count + ChatMessagePageSize - 1) / ChatMessagePageSize)
	if lastPage == 0 {
		lastPage = 1
	}

	switch raw {
	case "":
		return 1, nil
	case "last":
		return lastPage, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 || page > lastPage {
		return 0, errInvalidPage
	}
	return page, nil
}

// List returns one page of messages, newest first.
func (s *chatMessageService) List(ctx context.Context, query dto.ListChatMessagesQuery) (*ChatMessagePage, error) {
	specs := make([]specification.Specification, 0, 4)
	if query.Subtopic != "" {
		subtopicId, err := strconv.ParseUint(query.Subtopic, 10, 0)
		if err != nil {
			return nil, apperror.FieldError("subtopic", "A valid integer is required.")
		}
		specs = append(specs, specification.BySubtopicID{SubtopicID: uint(subtopicId)})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.ChatMessageRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	page, err := parsePage(query.Page, count)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
		specification.Pagination{Limit: ChatMessagePageSize, Offset: (page - 1) * ChatMessagePageSize},
	)
	messages, err := uow.ChatMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return &ChatMessagePage{
		Number:      page,
		Count:       count,
		HasNext:     int64(page*ChatMessagePageSize) < count,
		HasPrevious: page > 1,
		Results:     mapper.ChatMessagesToResponse(messages),
	}, nil
}

func (s *chatMessageService) Show(ctx context.Context, id uint) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	msg, err := uow.ChatMessageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, apperror.NotFound("chat message")
	}
	res := mapper.ChatMessageToResponse(msg)
	return &res, nil
}

// SetLlmResponse stores the generated answer. It succeeds at most once per message.
func (s *chatMessageService) SetLlmResponse(ctx context.Context, id uint, response string) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatMessageRepository()

	msg, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, apperror.NotFound("chat message")
	}

	written, err := repo.SetLlmResponse(ctx, id, response)
	if err != nil {
		return nil, err
	}
	if !written {
		return nil, apperror.Conflict("llm_response has already been set")
	}

	msg.LlmResponse = &response
	publishEvent(ctx, s.eventPublisher, s.logger, events.ChatMessageAnswered(msg.Id, msg.SubtopicId))

	res := mapper.ChatMessageToResponse(msg)
	return &res, nil
}
