package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nutrition-assistant-be/internal/dto"
	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/pkg/apperr"
	"nutrition-assistant-be/internal/pkg/logger"
	"nutrition-assistant-be/internal/repository/specification"
	"nutrition-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const summaryCacheTTL = 5 * time.Minute

type IMealService interface {
	LogMeal(ctx context.Context, userId uuid.UUID, req *dto.LogMealRequest) (*dto.LogMealResponse, error)
	GetMealLogs(ctx context.Context, userId uuid.UUID) ([]*dto.MealLogResponse, error)
	GetAnalysis(ctx context.Context, userId uuid.UUID, mealLogId uuid.UUID) (*dto.NutritionAnalysisResponse, error)
	GetNutritionSummary(ctx context.Context, userId uuid.UUID, days int) (*dto.NutritionSummaryResponse, error)
}

type mealService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	redisClient      *redis.Client
	logger           logger.ILogger
}

func NewMealService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	redisClient *redis.Client,
	log logger.ILogger,
) IMealService {
	return &mealService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		redisClient:      redisClient,
		logger:           log,
	}
}

// LogMeal stores the meal and hands analysis off to the background worker so
// the request returns without waiting on the estimator.
func (s *mealService) LogMeal(ctx context.Context, userId uuid.UUID, req *dto.LogMealRequest) (*dto.LogMealResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mealTime := time.Now()
	if req.MealTime != nil {
		mealTime = *req.MealTime
	}

	mealLog := entity.MealLog{
		Id:          uuid.New(),
		UserId:      userId,
		Description: req.Description,
		ImagePath:   req.ImagePath,
		MealTime:    mealTime,
		CreatedAt:   time.Now(),
	}

	if err := uow.MealLogRepository().Create(ctx, &mealLog); err != nil {
		return nil, err
	}

	msgJson, err := json.Marshal(dto.MealLoggedMessage{MealLogId: mealLog.Id})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, userId)

	return &dto.LogMealResponse{Id: mealLog.Id, MealTime: mealLog.MealTime}, nil
}

func (s *mealService) GetMealLogs(ctx context.Context, userId uuid.UUID) ([]*dto.MealLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.MealLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "meal_time", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.MealLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, &dto.MealLogResponse{
			Id:          l.Id,
			Description: l.Description,
			ImagePath:   l.ImagePath,
			MealTime:    l.MealTime,
			CreatedAt:   l.CreatedAt,
		})
	}
	return resp, nil
}

func (s *mealService) GetAnalysis(ctx context.Context, userId uuid.UUID, mealLogId uuid.UUID) (*dto.NutritionAnalysisResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mealLog, err := uow.MealLogRepository().FindOne(ctx,
		specification.ByID{ID: mealLogId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if mealLog == nil {
		return nil, apperr.NotFound("meal log")
	}

	analysis, err := uow.MealLogRepository().FindAnalysis(ctx,
		specification.ByMealLogID{MealLogID: mealLogId},
	)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, apperr.NotFound("nutrition analysis")
	}

	return &dto.NutritionAnalysisResponse{
		MealLogId:      analysis.MealLogId,
		Calories:       analysis.Calories,
		ProteinG:       analysis.ProteinG,
		CarbsG:         analysis.CarbsG,
		FatG:           analysis.FatG,
		SugarG:         analysis.SugarG,
		FiberG:         analysis.FiberG,
		Recommendation: analysis.Recommendation,
		AnalyzedAt:     analysis.CreatedAt,
	}, nil
}

// GetNutritionSummary aggregates analyses over a trailing window. The result
// is cached in Redis for a few minutes; cache failures degrade to a direct
// query.
func (s *mealService) GetNutritionSummary(ctx context.Context, userId uuid.UUID, days int) (*dto.NutritionSummaryResponse, error) {
	if days <= 0 {
		days = 7
	}

	cacheKey := summaryCacheKey(userId, days)
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.NutritionSummaryResponse
			if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	since := time.Now().AddDate(0, 0, -days)
	analyses, err := uow.MealLogRepository().FindAnalysesByUserSince(ctx, userId, since)
	if err != nil {
		return nil, err
	}

	resp := &dto.NutritionSummaryResponse{Days: days, TotalMeals: len(analyses)}
	if len(analyses) > 0 {
		var calories, protein, carbs, fat float64
		for _, a := range analyses {
			calories += a.Calories
			protein += a.ProteinG
			carbs += a.CarbsG
			fat += a.FatG
		}
		n := float64(len(analyses))
		resp.AvgCalories = calories / n
		resp.AvgProtein = protein / n
		resp.AvgCarbs = carbs / n
		resp.AvgFat = fat / n
	}

	if s.redisClient != nil {
		if payload, jsonErr := json.Marshal(resp); jsonErr == nil {
			if err := s.redisClient.Set(ctx, cacheKey, payload, summaryCacheTTL).Err(); err != nil {
				s.logger.Warn("meal", "failed to cache nutrition summary", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return resp, nil
}

func (s *mealService) invalidateSummary(ctx context.Context, userId uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	// Summaries are keyed per window size; drop the common ones.
	for _, days := range []int{1, 7, 30} {
		if err := s.redisClient.Del(ctx, summaryCacheKey(userId, days)).Err(); err != nil {
			s.logger.Warn("meal", "failed to invalidate summary cache", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
	}
}

func summaryCacheKey(userId uuid.UUID, days int) string {
	return fmt.Sprintf("nutrition:summary:%s:%d", userId.String(), days)
}
