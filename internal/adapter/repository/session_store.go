package repository

import (
	"context"
	"sync"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore keeps editing sessions in memory and drops the ones that sit
// idle for longer than ttl.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
	ttl      time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewSessionStore(ttl time.Duration, log *zap.Logger) *SessionStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionStore{
		sessions: map[uuid.UUID]*domain.Session{},
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Now is the store's clock.
func (s *SessionStore) Now() time.Time { return s.now() }

// SetClock replaces the clock, for tests.
func (s *SessionStore) SetClock(now func() time.Time) { s.now = now }

func (s *SessionStore) Create() *domain.Session {
	sess := domain.NewSession(s.now())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.log.Debug("session created", zap.String("session_id", sess.ID.String()))
	return sess
}

func (s *SessionStore) Get(id uuid.UUID) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete tears a session down and reports whether it existed.
func (s *SessionStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		sess.Close()
		s.log.Debug("session closed", zap.String("session_id", id.String()))
	}
	return ok
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle longer than the ttl and returns how many it
// removed. A ttl of zero disables expiry.
func (s *SessionStore) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.ExpireIfIdle(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				s.log.Info("expired idle sessions", zap.Int("count", n), zap.Int("remaining", s.Len()))
			}
		}
	}
}
