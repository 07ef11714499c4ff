package team

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session cache defaults. Sessions are deliberately in-memory only: a restart
// logs every team out and they log back in.
const (
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 24 * time.Hour
)

// sessionStore maps opaque bearer tokens to team IDs with time-based expiry.
type sessionStore struct {
	lru *expirable.LRU[string, uuid.UUID]
}

func newSessionStore(size int, ttl time.Duration) *sessionStore {
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionStore{
		lru: expirable.NewLRU[string, uuid.UUID](size, nil, ttl),
	}
}

// Create mints a fresh opaque token for the team.
func (s *sessionStore) Create(teamID uuid.UUID) string {
	token := uuid.NewString()
	s.lru.Add(token, teamID)
	return token
}

// Lookup resolves a token to its team, if the session is still live.
func (s *sessionStore) Lookup(token string) (uuid.UUID, bool) {
	return s.lru.Get(token)
}

// Revoke drops a session.
func (s *sessionStore) Revoke(token string) {
	s.lru.Remove(token)
}
