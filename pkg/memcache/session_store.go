package memcache

import (
	"sync"
	"time"

	"voyago/internal/chatflow"
)

type SessionStore interface {
	Set(sessionID string, engine *chatflow.Engine, ttl time.Duration)

	// Get returns the engine for sessionID if not expired and refreshes its
	// TTL (a session stays alive while the traveler keeps interacting).
	Get(sessionID string) (*chatflow.Engine, bool)

	Delete(sessionID string)

	// SweepExpired removes expired sessions and returns how many were dropped.
	SweepExpired() int

	Len() int
}

type entry struct {
	engine    *chatflow.Engine
	ttl       time.Duration
	expiresAt time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]entry),
	}
}

func (s *Sessions) Set(sessionID string, engine *chatflow.Engine, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = entry{
		engine:    engine,
		ttl:       ttl,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Sessions) Get(sessionID string) (*chatflow.Engine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, sessionID)
		return nil, false
	}
	e.expiresAt = time.Now().Add(e.ttl)
	s.data[sessionID] = e
	return e.engine, true
}

func (s *Sessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}

func (s *Sessions) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	dropped := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			dropped++
		}
	}
	return dropped
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
