package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealLog struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	ImagePath   *string   `gorm:"type:text"`
	MealTime    time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (MealLog) TableName() string {
	return "meal_logs"
}
