package implementation

import (
	"context"
	"errors"
	"time"

	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/mapper"
	"nutrition-assistant-be/internal/model"
	"nutrition-assistant-be/internal/repository/contract"
	"nutrition-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MealMapper
}

func NewMealLogRepository(db *gorm.DB) contract.MealLogRepository {
	return &MealLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewMealMapper(),
	}
}

func (r *MealLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MealLogRepositoryImpl) Create(ctx context.Context, log *entity.MealLog) error {
	m := r.mapper.MealLogToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.MealLogToEntity(m)
	return nil
}

func (r *MealLogRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MealLog{}, id).Error
}

func (r *MealLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MealLog, error) {
	var m model.MealLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MealLogToEntity(&m), nil
}

func (r *MealLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MealLog, error) {
	var models []*model.MealLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MealLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.MealLogToEntity(m)
	}
	return entities, nil
}

func (r *MealLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MealLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MealLogRepositoryImpl) CreateAnalysis(ctx context.Context, analysis *entity.NutritionAnalysis) error {
	m := r.mapper.AnalysisToModel(analysis)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*analysis = *r.mapper.AnalysisToEntity(m)
	return nil
}

func (r *MealLogRepositoryImpl) FindAnalysis(ctx context.Context, specs ...specification.Specification) (*entity.NutritionAnalysis, error) {
	var m model.NutritionAnalysis
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AnalysisToEntity(&m), nil
}

// FindAnalysesByUserSince joins through meal_logs to scope analyses to one
// user's trailing window.
func (r *MealLogRepositoryImpl) FindAnalysesByUserSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]*entity.NutritionAnalysis, error) {
	var models []*model.NutritionAnalysis
	err := r.db.WithContext(ctx).
		Joins("JOIN meal_logs ON meal_logs.id = nutrition_analyses.meal_log_id").
		Where("meal_logs.user_id = ?", userId).
		Where("nutrition_analyses.created_at >= ?", since).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.NutritionAnalysis, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AnalysisToEntity(m)
	}
	return entities, nil
}
