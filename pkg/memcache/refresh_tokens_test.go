package memcache

import (
	"testing"
	"time"
)

func TestRefreshSessionsSetPeek(t *testing.T) {
	s := NewRefreshSessions()
	s.Set("sess-1", "user-1", time.Minute)

	userID, ok := s.Peek("sess-1")
	if !ok {
		t.Fatal("expected session to be live")
	}
	if userID != "user-1" {
		t.Errorf("userID = %q, want user-1", userID)
	}

	if _, ok := s.Peek("sess-2"); ok {
		t.Error("unknown session reported as live")
	}
}

func TestRefreshSessionsRevoke(t *testing.T) {
	s := NewRefreshSessions()
	s.Set("sess-1", "user-1", time.Minute)
	s.Revoke("sess-1")

	if _, ok := s.Peek("sess-1"); ok {
		t.Error("revoked session reported as live")
	}
}

func TestRefreshSessionsExpiry(t *testing.T) {
	s := NewRefreshSessions()
	s.Set("sess-1", "user-1", -time.Second)

	if _, ok := s.Peek("sess-1"); ok {
		t.Error("expired session reported as live")
	}
}
