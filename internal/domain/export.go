package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExportPending   = "pending"
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)

// ExportJob records one PDF export of a session's document. Only metadata
// is kept; the document itself is never stored.
type ExportJob struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Status    string    `json:"status"`
	Format    string    `json:"format"`
	SizeBytes int       `json:"size_bytes"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
