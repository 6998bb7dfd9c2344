package bootstrap

import (
	"time"

	"mozi-streaming-be/internal/config"
	"mozi-streaming-be/internal/constant"
	"mozi-streaming-be/internal/controller"
	"mozi-streaming-be/internal/pkg/logger"
	"mozi-streaming-be/internal/repository/unitofwork"
	"mozi-streaming-be/internal/service"
	"mozi-streaming-be/pkg/llm/gemini"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background services, exposed for main.go to run
	ConsumerService  service.IConsumerService
	RetentionService service.IRetentionService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Model client
	provider := gemini.NewProvider(
		cfg.Keys.GoogleGemini,
		gemini.WithModel(cfg.Chat.Model),
	)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.ChatEventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.ChatEventTopic, sysLogger)

	suggestionCache := gocache.New(5*time.Minute, 10*time.Minute)
	chatService := service.NewChatService(
		uowFactory,
		provider,
		publisherService,
		suggestionCache,
		sysLogger,
	)

	retentionService := service.NewRetentionService(
		uowFactory,
		constant.ChatRetentionWindow,
		cfg.Chat.RetentionInterval,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		ChatController:   controller.NewChatController(chatService),
		ConsumerService:  consumerService,
		RetentionService: retentionService,
		Logger:           sysLogger,
	}
}
