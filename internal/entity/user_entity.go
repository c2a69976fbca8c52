package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"

	UserStatusPending = "pending"
	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

type User struct {
	Id            uuid.UUID
	Email         string
	PasswordHash  *string
	FullName      string
	Role          string
	Status        string
	EmailVerified bool
	Preferences   *UserPreferences
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

// UserPreferences mirrors the profile fields the assistant uses to tailor
// recommendations. Stored as a JSON column on users.
type UserPreferences struct {
	Age                 *int     `json:"age"`
	Gender              *string  `json:"gender"`
	WeightKg            *float64 `json:"weight_kg"`
	HeightCm            *float64 `json:"height_cm"`
	ActivityLevel       string   `json:"activity_level"`
	HealthGoal          string   `json:"health_goal"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

type EmailVerificationToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
