package entity

import (
	"time"

	"github.com/google/uuid"
)

type MealLog struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Description string
	ImagePath   *string
	MealTime    time.Time
	CreatedAt   time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}

type NutritionAnalysis struct {
	Id             uuid.UUID
	MealLogId      uuid.UUID
	Calories       float64
	ProteinG       float64
	CarbsG         float64
	FatG           float64
	SugarG         float64
	FiberG         float64
	Recommendation string
	CreatedAt      time.Time
}

// NutritionSummary aggregates analyses over a trailing window of days.
type NutritionSummary struct {
	TotalMeals  int     `json:"total_meals"`
	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	AvgCarbs    float64 `json:"avg_carbs"`
	AvgFat      float64 `json:"avg_fat"`
	Days        int     `json:"days"`
}
