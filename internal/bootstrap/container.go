package bootstrap

import (
	"context"
	"log"

	"nutrition-assistant-be/internal/config"
	"nutrition-assistant-be/internal/controller"
	"nutrition-assistant-be/internal/pkg/logger"
	"nutrition-assistant-be/internal/pkg/mailer"
	"nutrition-assistant-be/internal/repository/memory"
	"nutrition-assistant-be/internal/repository/unitofwork"
	"nutrition-assistant-be/internal/service"
	"nutrition-assistant-be/pkg/analyzer"
	"nutrition-assistant-be/pkg/assistant"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	OAuthController controller.IOAuthController
	UserController  controller.IUserController
	ChatController  controller.IChatController
	MealController  controller.IMealController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Redis
	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Redis.URL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// In-memory active session pointers
	activeSessionRepo := memory.NewActiveSessionRepository()

	responseGenerator := assistant.NewRuleBasedGenerator()
	nutritionAnalyzer := analyzer.New()

	// Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.MealLoggedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.MealLoggedTopic,
		uowFactory,
		nutritionAnalyzer,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, emailService, cfg.App.JWTSecret, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, cfg, sysLogger)
	userService := service.NewUserService(uowFactory)
	chatService := service.NewChatService(uowFactory, responseGenerator, activeSessionRepo, sysLogger)
	mealService := service.NewMealService(uowFactory, publisherService, rdb, sysLogger)

	return &Container{
		AuthController:  controller.NewAuthController(authService),
		OAuthController: controller.NewOAuthController(oauthService),
		UserController:  controller.NewUserController(userService),
		ChatController:  controller.NewChatController(chatService),
		MealController:  controller.NewMealController(mealService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
