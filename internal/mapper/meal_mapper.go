package mapper

import (
	"time"

	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/model"

	"gorm.io/gorm"
)

type MealMapper struct{}

func NewMealMapper() *MealMapper {
	return &MealMapper{}
}

func (m *MealMapper) MealLogToEntity(l *model.MealLog) *entity.MealLog {
	if l == nil {
		return nil
	}

	var deletedAt *time.Time
	if l.DeletedAt.Valid {
		t := l.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.MealLog{
		Id:          l.Id,
		UserId:      l.UserId,
		Description: l.Description,
		ImagePath:   l.ImagePath,
		MealTime:    l.MealTime,
		CreatedAt:   l.CreatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   l.DeletedAt.Valid,
	}
}

func (m *MealMapper) MealLogToModel(l *entity.MealLog) *model.MealLog {
	if l == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if l.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *l.DeletedAt, Valid: true}
	} else if l.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.MealLog{
		Id:          l.Id,
		UserId:      l.UserId,
		Description: l.Description,
		ImagePath:   l.ImagePath,
		MealTime:    l.MealTime,
		CreatedAt:   l.CreatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *MealMapper) AnalysisToEntity(a *model.NutritionAnalysis) *entity.NutritionAnalysis {
	if a == nil {
		return nil
	}
	return &entity.NutritionAnalysis{
		Id:             a.Id,
		MealLogId:      a.MealLogId,
		Calories:       a.Calories,
		ProteinG:       a.ProteinG,
		CarbsG:         a.CarbsG,
		FatG:           a.FatG,
		SugarG:         a.SugarG,
		FiberG:         a.FiberG,
		Recommendation: a.Recommendation,
		CreatedAt:      a.CreatedAt,
	}
}

func (m *MealMapper) AnalysisToModel(a *entity.NutritionAnalysis) *model.NutritionAnalysis {
	if a == nil {
		return nil
	}
	return &model.NutritionAnalysis{
		Id:             a.Id,
		MealLogId:      a.MealLogId,
		Calories:       a.Calories,
		ProteinG:       a.ProteinG,
		CarbsG:         a.CarbsG,
		FatG:           a.FatG,
		SugarG:         a.SugarG,
		FiberG:         a.FiberG,
		Recommendation: a.Recommendation,
		CreatedAt:      a.CreatedAt,
	}
}
