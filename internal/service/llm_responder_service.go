package service

import (
	"context"
	"encoding/json"
	"fmt"

	"roadmap-be/internal/dto"
	"roadmap-be/internal/entity"
	"roadmap-be/internal/pkg/apperror"
	"roadmap-be/internal/pkg/logger"
	"roadmap-be/internal/repository/specification"
	"roadmap-be/internal/repository/unitofwork"
	"roadmap-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// historyTurns caps how many earlier answered messages are replayed to the model.
const historyTurns = 10

type ILlmResponderService interface {
	Consume(ctx context.Context) error
}

type llmResponderService struct {
	pubSub             *gochannel.GoChannel
	topicName          string
	uowFactory         unitofwork.RepositoryFactory
	llmProvider        llm.LLMProvider
	chatMessageService IChatMessageService
	logger             logger.ILogger
	options            []llm.Option
}

func NewLlmResponderService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	chatMessageService IChatMessageService,
	log logger.ILogger,
	options ...llm.Option,
) ILlmResponderService {
	return &llmResponderService{
		pubSub:             pubSub,
		topicName:          topicName,
		uowFactory:         uowFactory,
		llmProvider:        llmProvider,
		chatMessageService: chatMessageService,
		logger:             log,
		options:            options,
	}
}

func (rs *llmResponderService) Consume(ctx context.Context) error {
	messages, err := rs.pubSub.Subscribe(ctx, rs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			rs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (rs *llmResponderService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PendingLlmResponseMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		rs.logger.Error("llm_responder", "failed to unmarshal message", map[string]interface{}{"error": err})
		msg.Ack() // malformed payloads never succeed on retry
		return
	}
	details := map[string]interface{}{
		"chat_message_id": payload.ChatMessageId,
		"correlation_id":  payload.CorrelationId,
	}

	uow := rs.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatMessageRepository().FindOne(ctx,
		specification.ByID{ID: payload.ChatMessageId},
		specification.AwaitingResponse{},
	)
	if err != nil {
		rs.logger.Error("llm_responder", "failed to load chat message", withError(details, err))
		msg.Nack()
		return
	}
	if chat == nil {
		// Deleted or already answered
		msg.Ack()
		return
	}

	subtopicCtx, err := uow.SubtopicRepository().FindContext(ctx, chat.SubtopicId)
	if err != nil {
		rs.logger.Error("llm_responder", "failed to load subtopic context", withError(details, err))
		msg.Nack()
		return
	}
	if subtopicCtx == nil {
		msg.Ack()
		return
	}

	earlier, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySubtopicID{SubtopicID: chat.SubtopicId},
	)
	if err != nil {
		rs.logger.Error("llm_responder", "failed to load chat history", withError(details, err))
		msg.Nack()
		return
	}

	answer, err := rs.llmProvider.Chat(ctx, BuildPrompt(subtopicCtx, earlier, chat), rs.options...)
	if err != nil {
		// Left null; it can still be filled through the API.
		rs.logger.Error("llm_responder", "llm call failed", withError(details, err))
		msg.Ack()
		return
	}

	if _, err := rs.chatMessageService.SetLlmResponse(ctx, chat.Id, answer); err != nil {
		if apperror.IsNotFound(err) {
			rs.logger.Warn("llm_responder", "chat message deleted before response was stored", details)
			msg.Ack()
			return
		}
		if appErr, ok := apperror.As(err); ok && appErr.Code < 500 {
			msg.Ack()
			return
		}
		rs.logger.Error("llm_responder", "failed to store llm response", withError(details, err))
		msg.Nack()
		return
	}

	rs.logger.Info("llm_responder", "llm response stored", details)
	msg.Ack()
}

func withError(details map[string]interface{}, err error) map[string]interface{} {
	out := make(map[string]interface{}, len(details)+1)
	for k, v := range details {
		out[k] = v
	}
	out["error"] = err
	return out
}

// BuildPrompt frames the conversation for the model: a system turn describing the
// roadmap, up to historyTurns earlier exchanges on the subtopic, then the new question.
func BuildPrompt(sc *entity.SubtopicContext, history []*entity.ChatMessage, current *entity.ChatMessage) []llm.Message {
	system := fmt.Sprintf(
		"You are %s, helping a candidate prepare for an interview about %s. "+
			"The current topic is %q and the subtopic is %q. "+
			"Answer the candidate's question concisely and stay on the subtopic.",
		sc.Interviewer, sc.RoadmapTopic, sc.TopicTitle, sc.SubtopicTitle,
	)

	answered := make([]*entity.ChatMessage, 0, len(history))
	for _, m := range history {
		if m.Id != current.Id && m.HasResponse() {
			answered = append(answered, m)
		}
	}
	if len(answered) > historyTurns {
		answered = answered[len(answered)-historyTurns:]
	}

	msgs := make([]llm.Message, 0, 2+2*len(answered))
	msgs = append(msgs, llm.Message{Role: "system", Content: system})
	for _, m := range answered {
		msgs = append(msgs,
			llm.Message{Role: "user", Content: m.UserMessage},
			llm.Message{Role: "assistant", Content: *m.LlmResponse},
		)
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: current.UserMessage})
	return msgs
}
