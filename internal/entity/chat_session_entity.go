package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Title        string
	Pinned       bool
	CreatedAt    time.Time
	LastActiveAt time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
