package memcache

import (
	"sync"
	"time"
)

// SessionStore tracks live refresh-token sessions by their jti. A token
// whose session has been revoked (or expired) can no longer mint access
// tokens, even if the JWT itself still verifies.
type SessionStore interface {
	Set(sessionID string, userID string, ttl time.Duration)

	// Peek reports the owning user if the session is still live.
	Peek(sessionID string) (string, bool)

	// Revoke drops the session immediately.
	Revoke(sessionID string)
}

type entry struct {
	userID    string
	expiresAt time.Time
}

type RefreshSessions struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewRefreshSessions() *RefreshSessions {
	return &RefreshSessions{
		data: make(map[string]entry),
	}
}

func (s *RefreshSessions) Set(sessionID string, userID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = entry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RefreshSessions) Peek(sessionID string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, sessionID) // cleanup expired
		s.mu.Unlock()
		return "", false
	}
	return e.userID, true
}

func (s *RefreshSessions) Revoke(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
