package mapper

import (
	"testing"
	"time"

	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestChatMapper(t *testing.T) {
	m := NewChatMapper()
	now := time.Now()

	t.Run("nil in nil out", func(t *testing.T) {
		assert.Nil(t, m.ChatSessionToEntity(nil))
		assert.Nil(t, m.ChatSessionToModel(nil))
		assert.Nil(t, m.ChatMessageToEntity(nil))
		assert.Nil(t, m.ChatMessageToModel(nil))
	})

	t.Run("session round trip", func(t *testing.T) {
		e := &entity.ChatSession{
			Id:           uuid.New(),
			UserId:       uuid.New(),
			Title:        "Protein questions",
			Pinned:       true,
			CreatedAt:    now,
			LastActiveAt: now,
		}

		got := m.ChatSessionToEntity(m.ChatSessionToModel(e))
		assert.Equal(t, e.Id, got.Id)
		assert.Equal(t, e.Title, got.Title)
		assert.True(t, got.Pinned)
		assert.False(t, got.IsDeleted)
		assert.Nil(t, got.DeletedAt)
	})

	t.Run("soft delete carried into entity", func(t *testing.T) {
		mdl := &model.ChatSession{
			Id:        uuid.New(),
			UserId:    uuid.New(),
			Title:     "old chat",
			DeletedAt: gorm.DeletedAt{Time: now, Valid: true},
		}

		got := m.ChatSessionToEntity(mdl)
		assert.True(t, got.IsDeleted)
		assert.NotNil(t, got.DeletedAt)
	})

	t.Run("is deleted flag produces valid deleted at", func(t *testing.T) {
		e := &entity.ChatMessage{
			Id:        uuid.New(),
			Role:      "user",
			Content:   "hello",
			IsDeleted: true,
		}

		got := m.ChatMessageToModel(e)
		assert.True(t, got.DeletedAt.Valid)
	})
}
