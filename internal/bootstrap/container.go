package bootstrap

import (
	"context"
	"log"

	"assessment-assistant-be/internal/config"
	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/controller"
	"assessment-assistant-be/internal/handler"
	"assessment-assistant-be/internal/pkg/logger"
	"assessment-assistant-be/internal/repository/memory"
	"assessment-assistant-be/internal/repository/persister"
	"assessment-assistant-be/internal/repository/unitofwork"
	"assessment-assistant-be/internal/service"
	"assessment-assistant-be/internal/websocket"
	"assessment-assistant-be/pkg/content"
	"assessment-assistant-be/pkg/docgen"
	"assessment-assistant-be/pkg/llm/factory"

	pktNats "assessment-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WorkspaceController  controller.IWorkspaceController
	SessionController    controller.ISessionController
	ChatController       controller.IChatController
	CredentialController controller.ICredentialController
	ExtractionController controller.IExtractionController
	ExportController     controller.IExportController
	ContentController    controller.IContentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Model Gateway
	baseURL := cfg.Ai.OpenAIBaseURL
	if cfg.Ai.Provider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.Provider, cfg.Ai.Model, baseURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Content Index
	contentIndex, err := content.Load(cfg.Content.ArticlesDir)
	if err != nil {
		log.Printf("[WARN] Failed to load content index: %v", err)
		contentIndex = &content.Index{}
	}

	// 6. Services
	storeRepo := memory.NewStoreRepository()
	slotPersister := persister.NewSlotPersister(uowFactory)

	publisherService := service.NewPublisherService(constant.RecordEventTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.RecordEventTopic,
		wsHub,
		natsPub,
		sysLogger,
	)

	workspaceService := service.NewWorkspaceService(uowFactory)
	sessionService := service.NewSessionService(uowFactory, storeRepo, slotPersister, publisherService, sysLogger)
	chatService := service.NewChatService(sessionService, llmProvider, wsHub, sysLogger)
	extractionService := service.NewExtractionService(llmProvider, service.NewPassthroughIsolator(), cfg.Ai.VisionModel, sysLogger)
	exportService := service.NewExportService(docgen.NewRTFGenerator())
	contentService := service.NewContentService(contentIndex)

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		WorkspaceController:  controller.NewWorkspaceController(workspaceService),
		SessionController:    controller.NewSessionController(sessionService),
		ChatController:       controller.NewChatController(chatService),
		CredentialController: controller.NewCredentialController(sessionService, cfg.App.SecureCookies),
		ExtractionController: controller.NewExtractionController(extractionService),
		ExportController:     controller.NewExportController(exportService),
		ContentController:    controller.NewContentController(contentService),

		ConsumerService: consumerService,
	}
}
