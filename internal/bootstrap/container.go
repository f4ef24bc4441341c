package bootstrap

import (
	"context"
	"log"
	"time"

	"roadmap-be/internal/config"
	"roadmap-be/internal/controller"
	"roadmap-be/internal/pkg/logger"
	"roadmap-be/internal/pkg/serverutils"
	"roadmap-be/internal/repository/unitofwork"
	"roadmap-be/internal/service"
	"roadmap-be/pkg/cache"
	"roadmap-be/pkg/llm"
	"roadmap-be/pkg/llm/factory"

	pktNats "roadmap-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	RoadmapController     controller.IRoadmapController
	ChatMessageController controller.IChatMessageController

	// Background Services (nil when no LLM is configured)
	LlmResponderService service.ILlmResponderService

	closers []func() error
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c.Logger = sysLogger
	c.closers = append(c.closers, sysLogger.Sync)

	// 2. Infrastructure
	roadmapCache := c.newCache(cfg)

	var eventPublisher service.IEventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}

	// 3. Event Bus, only needed when something answers chat messages
	var publisherService service.IPublisherService
	var pubSub *gochannel.GoChannel
	if llmProvider != nil {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		pubSub = gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
		c.closers = append(c.closers, pubSub.Close)
		publisherService = service.NewPublisherService(cfg.Ai.Topic, pubSub)
	} else {
		log.Println("[INFO] LLM Provider disabled; llm_response is filled through the API only")
	}

	// 4. Services
	roadmapService := service.NewRoadmapService(
		uowFactory,
		roadmapCache,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		eventPublisher,
		sysLogger,
	)
	chatMessageService := service.NewChatMessageService(uowFactory, publisherService, eventPublisher, sysLogger)

	if llmProvider != nil {
		c.LlmResponderService = service.NewLlmResponderService(
			pubSub,
			cfg.Ai.Topic,
			uowFactory,
			llmProvider,
			chatMessageService,
			sysLogger,
			llm.WithTemperature(cfg.Ai.Temperature),
			llm.WithMaxTokens(cfg.Ai.MaxTokens),
		)
	}

	// 5. Controllers
	auth := serverutils.NewJwtMiddleware(cfg.App.JwtSecret)
	c.RoadmapController = controller.NewRoadmapController(roadmapService, auth)
	c.ChatMessageController = controller.NewChatMessageController(chatMessageService, auth)

	return c
}

func (c *Container) newCache(cfg *config.Config) cache.Cache {
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	switch cfg.Cache.Driver {
	case "none":
		return cache.NewNoop()
	case "redis":
		rc := cache.NewRedisFromURL(cfg.App.RedisURL, "roadmap-be:")
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory cache", err)
			_ = rc.Close()
			return cache.NewMemory(ttl, 2*ttl)
		}
		c.closers = append(c.closers, rc.Close)
		return rc
	default:
		return cache.NewMemory(ttl, 2*ttl)
	}
}

// Close releases infrastructure in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Printf("[WARN] close: %v", err)
		}
	}
}
