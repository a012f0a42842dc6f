package domain

import (
	"testing"
	"time"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ExpireIfIdle(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession(start)

	assert.False(t, s.ExpireIfIdle(start), "touched at the cutoff")

	_, ok := s.Edit(start.Add(time.Minute), func(d *model.Document) { d.SetField(model.FieldName, "Ada") })
	require.True(t, ok)
	assert.False(t, s.ExpireIfIdle(start.Add(30*time.Second)))

	assert.True(t, s.ExpireIfIdle(start.Add(2*time.Minute)))
	assert.False(t, s.ExpireIfIdle(start.Add(2*time.Minute)), "already closed")

	ran := false
	doc, ok := s.Edit(start.Add(3*time.Minute), func(d *model.Document) { ran = true })
	assert.False(t, ok)
	assert.Nil(t, doc)
	assert.False(t, ran)
}

func TestSession_EditReturnsCopy(t *testing.T) {
	s := NewSession(time.Now())

	doc, ok := s.Edit(time.Now(), func(d *model.Document) { d.SetField(model.FieldSummary, "Engineer") })
	require.True(t, ok)
	doc.SetField(model.FieldSummary, "changed")

	snap, ok := s.Snapshot(time.Now())
	require.True(t, ok)
	assert.Equal(t, "Engineer", snap.Summary)
}
