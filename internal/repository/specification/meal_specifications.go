package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByMealLogID struct {
	MealLogID uuid.UUID
}

func (s ByMealLogID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("meal_log_id = ?", s.MealLogID)
}

// CreatedSince bounds a query to rows created on or after a point in time,
// used by the trailing-window nutrition summary.
type CreatedSince struct {
	Since time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}
