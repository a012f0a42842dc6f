package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// Session owns the document of one editing session. Edits hold mu so that
// each one completes before the next starts.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	doc      *model.Document
	lastSeen time.Time
	closed   bool
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		doc:       model.NewDocument(),
		lastSeen:  now,
	}
}

// Edit runs fn with exclusive access to the document and returns a snapshot
// of the result. It reports false, without running fn, once the session is
// closed.
func (s *Session) Edit(now time.Time, fn func(d *model.Document)) (*model.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}
	fn(s.doc)
	s.lastSeen = now
	return s.doc.Clone(), true
}

// Snapshot returns a copy of the current document, or false once the session
// is closed.
func (s *Session) Snapshot(now time.Time) (*model.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}
	s.lastSeen = now
	return s.doc.Clone(), true
}

// Close marks the session closed. Edits already holding the lock finish first.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// ExpireIfIdle closes the session when it has not been touched since cutoff
// and reports whether it did.
func (s *Session) ExpireIfIdle(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.lastSeen.Before(cutoff) {
		return false
	}
	s.closed = true
	return true
}
