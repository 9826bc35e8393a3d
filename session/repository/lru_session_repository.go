package sessionrepo

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Stopper is a session value that owns resources released on removal.
type Stopper interface {
	Stop()
}

// SessionRepository represents the contract for a bounded repository of live sessions.
// When full, adding a session evicts the least recently used one.
// Evicted and removed sessions are stopped.
type SessionRepository[V Stopper] interface {
	// Add stores the session. Returns true if another session was evicted to make room.
	Add(sessionID string, session V) bool
	// Get returns the session and marks it as recently used.
	Get(sessionID string) (V, bool)
	// Remove stops and removes the session. Returns false if it did not exist.
	Remove(sessionID string) bool
	// Len returns the number of live sessions.
	Len() int
	// Purge stops and removes all sessions.
	Purge()
}

type lruSessionRepo[V Stopper] struct {
	cache *lru.Cache[string, V]
}

// New creates a new session repository holding at most maxSessions sessions.
// onRemove, if not nil, is called after a session was stopped on eviction or removal.
func New[V Stopper](maxSessions int, onRemove func(sessionID string)) (SessionRepository[V], error) {
	cache, err := lru.NewWithEvict[string, V](maxSessions, func(sessionID string, session V) {
		session.Stop()

		if onRemove != nil {
			onRemove(sessionID)
		}
	})
	if err != nil {
		return nil, err
	}

	return &lruSessionRepo[V]{
		cache: cache,
	}, nil
}

// Add implements SessionRepository.
func (r *lruSessionRepo[V]) Add(sessionID string, session V) bool {
	return r.cache.Add(sessionID, session)
}

// Get implements SessionRepository.
func (r *lruSessionRepo[V]) Get(sessionID string) (V, bool) {
	return r.cache.Get(sessionID)
}

// Remove implements SessionRepository.
func (r *lruSessionRepo[V]) Remove(sessionID string) bool {
	return r.cache.Remove(sessionID)
}

// Len implements SessionRepository.
func (r *lruSessionRepo[V]) Len() int {
	return r.cache.Len()
}

// Purge implements SessionRepository.
func (r *lruSessionRepo[V]) Purge() {
	r.cache.Purge()
}
