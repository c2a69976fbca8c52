package service

import (
	"context"
	"encoding/json"
	"time"

	"nutrition-assistant-be/internal/dto"
	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/pkg/logger"
	"nutrition-assistant-be/internal/repository/specification"
	"nutrition-assistant-be/internal/repository/unitofwork"
	"nutrition-assistant-be/pkg/analyzer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService runs nutrition analysis off the request path. Each meal
// logged message loads the meal, estimates macros and persists one analysis
// row.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	analyzer   *analyzer.Analyzer
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	nutritionAnalyzer *analyzer.Analyzer,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		analyzer:   nutritionAnalyzer,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.MealLoggedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack malformed messages to prevent infinite retry.
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	mealLog, err := uow.MealLogRepository().FindOne(ctx, specification.ByID{ID: payload.MealLogId})
	if err != nil {
		cs.logger.Error("consumer", "failed to load meal log", map[string]interface{}{
			"meal_log_id": payload.MealLogId.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}
	if mealLog == nil {
		// Deleted before we got to it. Ack.
		msg.Ack()
		return
	}

	existing, err := uow.MealLogRepository().FindAnalysis(ctx,
		specification.ByMealLogID{MealLogID: mealLog.Id},
	)
	if err != nil {
		msg.Nack()
		return
	}
	if existing != nil {
		// Redelivery after a crash, analysis already stored.
		msg.Ack()
		return
	}

	result := cs.analyzer.Analyze(mealLog.Description)

	analysis := entity.NutritionAnalysis{
		Id:             uuid.New(),
		MealLogId:      mealLog.Id,
		Calories:       result.Calories,
		ProteinG:       result.ProteinG,
		CarbsG:         result.CarbsG,
		FatG:           result.FatG,
		SugarG:         result.SugarG,
		FiberG:         result.FiberG,
		Recommendation: result.Recommendation,
		CreatedAt:      time.Now(),
	}

	if err := uow.MealLogRepository().CreateAnalysis(ctx, &analysis); err != nil {
		cs.logger.Error("consumer", "failed to persist analysis", map[string]interface{}{
			"meal_log_id": mealLog.Id.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "meal analyzed", map[string]interface{}{
		"meal_log_id": mealLog.Id.String(),
		"calories":    result.Calories,
	})
	msg.Ack()
}
