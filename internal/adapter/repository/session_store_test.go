package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore(ttl time.Duration) (*SessionStore, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewSessionStore(ttl, zap.NewNop())
	s.SetClock(c.Now)
	return s, c
}

func TestSessionStore_CreateGetDelete(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	sess := s.Create()
	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Delete(sess.ID))
	assert.False(t, s.Delete(sess.ID))
	_, ok = s.Get(sess.ID)
	assert.False(t, ok)
}

func TestSessionStore_GetUnknown(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	_, ok := s.Get(uuid.New())
	assert.False(t, ok)
}

func TestSessionStore_SweepExpiresIdle(t *testing.T) {
	s, c := newTestStore(10 * time.Minute)
	idle := s.Create()
	active := s.Create()

	c.Advance(8 * time.Minute)
	active.Edit(c.Now(), func(d *model.Document) { d.SetField(model.FieldName, "Ada") })
	c.Advance(5 * time.Minute)

	assert.Equal(t, 1, s.Sweep())
	_, ok := s.Get(idle.ID)
	assert.False(t, ok)
	_, ok = s.Get(active.ID)
	assert.True(t, ok)
}

func TestSessionStore_RemovedSessionRefusesEdits(t *testing.T) {
	s, c := newTestStore(10 * time.Minute)
	swept := s.Create()

	c.Advance(11 * time.Minute)
	require.Equal(t, 1, s.Sweep())

	ran := false
	_, ok := swept.Edit(c.Now(), func(d *model.Document) { ran = true })
	assert.False(t, ok)
	assert.False(t, ran)

	closed := s.Create()
	require.True(t, s.Delete(closed.ID))
	_, ok = closed.Snapshot(c.Now())
	assert.False(t, ok)
}

func TestSessionStore_ZeroTTLNeverExpires(t *testing.T) {
	s, c := newTestStore(0)
	s.Create()

	c.Advance(24 * time.Hour)

	assert.Equal(t, 0, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestSessionStore_RunStopsOnCancel(t *testing.T) {
	s, c := newTestStore(time.Minute)
	s.Create()
	c.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
}
