package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActiveSessionRepository(t *testing.T) {
	repo := NewActiveSessionRepository()
	userA := uuid.New()
	userB := uuid.New()
	session1 := uuid.New()
	session2 := uuid.New()

	t.Run("empty by default", func(t *testing.T) {
		_, found := repo.Get(userA)
		assert.False(t, found)
	})

	t.Run("set and get per user", func(t *testing.T) {
		repo.Set(userA, session1)
		repo.Set(userB, session2)

		got, found := repo.Get(userA)
		assert.True(t, found)
		assert.Equal(t, session1, got)

		got, found = repo.Get(userB)
		assert.True(t, found)
		assert.Equal(t, session2, got)
	})

	t.Run("set overwrites previous pointer", func(t *testing.T) {
		repo.Set(userA, session2)
		got, _ := repo.Get(userA)
		assert.Equal(t, session2, got)
	})

	t.Run("clear if only matches current pointer", func(t *testing.T) {
		repo.Set(userA, session1)

		repo.ClearIf(userA, session2)
		got, found := repo.Get(userA)
		assert.True(t, found)
		assert.Equal(t, session1, got)

		repo.ClearIf(userA, session1)
		_, found = repo.Get(userA)
		assert.False(t, found)
	})

	t.Run("clear removes pointer", func(t *testing.T) {
		repo.Set(userA, session1)
		repo.Clear(userA)
		_, found := repo.Get(userA)
		assert.False(t, found)
	})
}
