package model

import (
	"time"

	"github.com/google/uuid"
)

type NutritionAnalysis struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MealLogId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Calories       float64   `gorm:"not null"`
	ProteinG       float64   `gorm:"not null"`
	CarbsG         float64   `gorm:"not null"`
	FatG           float64   `gorm:"not null"`
	SugarG         float64   `gorm:"not null;default:0"`
	FiberG         float64   `gorm:"not null;default:0"`
	Recommendation string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (NutritionAnalysis) TableName() string {
	return "nutrition_analyses"
}
