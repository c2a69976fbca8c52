package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ActiveSessionRepository tracks, per user, which chat session the client is
// currently viewing. It is process-local and intentionally volatile: a
// restart means no active session until the client picks one again.
type ActiveSessionRepository struct {
	cache *cache.Cache
}

func NewActiveSessionRepository() *ActiveSessionRepository {
	// Pointers expire after a day of inactivity; expired entries are purged
	// every 10 minutes.
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &ActiveSessionRepository{
		cache: c,
	}
}

func (r *ActiveSessionRepository) Set(userId, sessionId uuid.UUID) {
	r.cache.Set(userId.String(), sessionId, cache.DefaultExpiration)
}

func (r *ActiveSessionRepository) Get(userId uuid.UUID) (uuid.UUID, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(uuid.UUID), true
	}
	return uuid.Nil, false
}

func (r *ActiveSessionRepository) Clear(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}

// ClearIf unsets the pointer only when it currently targets sessionId, so
// deleting a background session does not disturb the one on screen.
func (r *ActiveSessionRepository) ClearIf(userId, sessionId uuid.UUID) {
	if current, found := r.Get(userId); found && current == sessionId {
		r.cache.Delete(userId.String())
	}
}
