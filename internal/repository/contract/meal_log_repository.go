package contract

import (
	"context"
	"time"

	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MealLogRepository interface {
	Create(ctx context.Context, log *entity.MealLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MealLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MealLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateAnalysis(ctx context.Context, analysis *entity.NutritionAnalysis) error
	FindAnalysis(ctx context.Context, specs ...specification.Specification) (*entity.NutritionAnalysis, error)
	FindAnalysesByUserSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]*entity.NutritionAnalysis, error)
}
