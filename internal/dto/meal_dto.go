package dto

import (
	"time"

	"github.com/google/uuid"
)

type LogMealRequest struct {
	Description string     `json:"description" validate:"required,min=2"`
	ImagePath   *string    `json:"image_path,omitempty"`
	MealTime    *time.Time `json:"meal_time,omitempty"`
}

type LogMealResponse struct {
	Id       uuid.UUID `json:"id"`
	MealTime time.Time `json:"meal_time"`
}

type MealLogResponse struct {
	Id          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	ImagePath   *string   `json:"image_path,omitempty"`
	MealTime    time.Time `json:"meal_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type NutritionSummaryResponse struct {
	Days        int     `json:"days"`
	TotalMeals  int     `json:"total_meals"`
	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	AvgCarbs    float64 `json:"avg_carbs"`
	AvgFat      float64 `json:"avg_fat"`
}

// MealLoggedMessage is the payload published on the meal logged topic and
// consumed by the nutrition analysis worker.
type MealLoggedMessage struct {
	MealLogId uuid.UUID `json:"meal_log_id"`
}

type NutritionAnalysisResponse struct {
	MealLogId      uuid.UUID `json:"meal_log_id"`
	Calories       float64   `json:"calories"`
	ProteinG       float64   `json:"protein_g"`
	CarbsG         float64   `json:"carbs_g"`
	FatG           float64   `json:"fat_g"`
	SugarG         float64   `json:"sugar_g"`
	FiberG         float64   `json:"fiber_g"`
	Recommendation string    `json:"recommendation"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
}
