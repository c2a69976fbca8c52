package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"nutrition-assistant-be/internal/dto"
	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/pkg/logger"
	"nutrition-assistant-be/internal/repository/unitofwork"
	"nutrition-assistant-be/internal/service"
	"nutrition-assistant-be/pkg/analyzer"
	"nutrition-assistant-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealLoggingAndAnalysis(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	sysLogger := logger.NewZapLogger(os.TempDir()+"/meal_flow_test.log", false)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	const topic = "MEAL_LOGGED_TEST"

	publisherService := service.NewPublisherService(pubSub, topic)
	consumerService := service.NewConsumerService(pubSub, topic, uowFactory, analyzer.New(), sysLogger)
	mealService := service.NewMealService(uowFactory, publisherService, nil, sysLogger)

	ctx := context.Background()
	require.NoError(t, consumerService.Consume(ctx))

	userId := uuid.New()
	uow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, &entity.User{
		Id:        userId,
		Email:     "meal-flow-" + userId.String() + "@example.com",
		FullName:  "Meal Flow Test User",
		Role:      entity.UserRoleUser,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now(),
	}))

	logged, err := mealService.LogMeal(ctx, userId, &dto.LogMealRequest{
		Description: "Grilled chicken with rice and broccoli",
	})
	require.NoError(t, err)

	t.Run("meal appears in listing", func(t *testing.T) {
		logs, err := mealService.GetMealLogs(ctx, userId)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, logged.Id, logs[0].Id)
	})

	t.Run("analysis is produced by the consumer", func(t *testing.T) {
		var analysis *dto.NutritionAnalysisResponse
		// The consumer runs asynchronously; poll briefly.
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			analysis, err = mealService.GetAnalysis(ctx, userId, logged.Id)
			if err == nil {
				break
			}
			time.Sleep(100 * time.Millisecond)
		}
		require.NoError(t, err)
		assert.Greater(t, analysis.Calories, 0.0)
		assert.Greater(t, analysis.ProteinG, 0.0)
		assert.NotEmpty(t, analysis.Recommendation)
	})

	t.Run("summary aggregates the window", func(t *testing.T) {
		summary, err := mealService.GetNutritionSummary(ctx, userId, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, summary.Days)
		assert.Equal(t, 1, summary.TotalMeals)
		assert.Greater(t, summary.AvgCalories, 0.0)
	})

	t.Run("foreign meal is not visible", func(t *testing.T) {
		_, err := mealService.GetAnalysis(ctx, uuid.New(), logged.Id)
		assert.Error(t, err)
	})
}
