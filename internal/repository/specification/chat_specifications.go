package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

// PinnedFirst orders the sidebar listing: pinned sessions before unpinned,
// then most recently active inside each group.
type PinnedFirst struct{}

func (s PinnedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("pinned DESC").Order("last_active_at DESC")
}

// MessageOrder is the canonical history ordering: created_at ascending with
// insertion id as tie breaker, so equal timestamps keep append order.
type MessageOrder struct{}

func (s MessageOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}
