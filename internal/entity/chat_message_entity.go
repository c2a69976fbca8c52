package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is immutable after creation. Ordering inside a session is
// created_at ascending, insertion id breaking ties.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	CreatedAt     time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
