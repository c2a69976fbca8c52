package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdatePreferencesRequest struct {
	Age                 *int     `json:"age" validate:"omitempty,min=1,max=130"`
	Gender              *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	WeightKg            *float64 `json:"weight_kg" validate:"omitempty,gt=0,lt=700"`
	HeightCm            *float64 `json:"height_cm" validate:"omitempty,gt=0,lt=300"`
	ActivityLevel       string   `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	HealthGoal          string   `json:"health_goal" validate:"omitempty,oneof=lose_weight maintain gain_muscle general_health"`
	DietaryRestrictions []string `json:"dietary_restrictions" validate:"max=20,dive,min=2"`
}

type UserPreferencesResponse struct {
	Age                 *int     `json:"age"`
	Gender              *string  `json:"gender"`
	WeightKg            *float64 `json:"weight_kg"`
	HeightCm            *float64 `json:"height_cm"`
	ActivityLevel       string   `json:"activity_level"`
	HealthGoal          string   `json:"health_goal"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}
