package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

// Renderer converts a self-contained HTML document into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Printer lays a preview out as a standalone HTML document.
type Printer interface {
	Printable(v View) (string, error)
}

type ExportsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
	CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error)
}

type SessionStore interface {
	Create() *domain.Session
	Get(id uuid.UUID) (*domain.Session, bool)
	Delete(id uuid.UUID) bool
	Now() time.Time
}

// Snapshot is a copy of a session's document together with its preview.
type Snapshot struct {
	SessionID uuid.UUID       `json:"session_id"`
	Document  *model.Document `json:"document"`
	View      View            `json:"view"`
	// Changed is false when the last command was refused.
	Changed bool `json:"changed"`
}

// Editor drives editing sessions: it applies commands to the session's
// document and derives the preview after every change.
type Editor struct {
	sessions     SessionStore
	renderer     Renderer
	printer      Printer
	exports      ExportsRepo
	summaryLimit int
	log          *zap.Logger
}

func NewEditor(sessions SessionStore, r Renderer, p Printer, exports ExportsRepo, summaryLimit int, log *zap.Logger) *Editor {
	if summaryLimit <= 0 {
		summaryLimit = SummarySoftLimit
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{sessions: sessions, renderer: r, printer: p, exports: exports, summaryLimit: summaryLimit, log: log}
}

// Open starts a session with a fresh document.
func (e *Editor) Open(ctx context.Context) Snapshot {
	s := e.sessions.Create()
	doc, _ := s.Snapshot(e.sessions.Now())
	return e.snapshot(s.ID, doc, true)
}

func (e *Editor) Get(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	s, err := e.session(id)
	if err != nil {
		return Snapshot{}, err
	}
	doc, ok := s.Snapshot(e.sessions.Now())
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return e.snapshot(id, doc, false), nil
}

// Close tears the session down; its document is discarded.
func (e *Editor) Close(ctx context.Context, id uuid.UUID) error {
	if !e.sessions.Delete(id) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// Apply runs one command against the session's document.
func (e *Editor) Apply(ctx context.Context, id uuid.UUID, cmd model.Command) (Snapshot, error) {
	s, err := e.session(id)
	if err != nil {
		return Snapshot{}, err
	}
	var changed bool
	doc, ok := s.Edit(e.sessions.Now(), func(d *model.Document) {
		changed = cmd.Apply(d)
	})
	if !ok {
		// expired or closed after the lookup
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if !changed {
		e.log.Debug("command refused",
			zap.String("session_id", id.String()),
			zap.String("op", string(cmd.Op)),
			zap.Int("index", cmd.Index))
	}
	return e.snapshot(id, doc, changed), nil
}

// Preview returns the current preview of the session's document.
func (e *Editor) Preview(ctx context.Context, id uuid.UUID) (View, error) {
	snap, err := e.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	return snap.View, nil
}

// ExportPDF prints the session's preview to PDF and records the export.
func (e *Editor) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	view, err := e.Preview(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job := &domain.ExportJob{
		ID:        uuid.New(),
		SessionID: id,
		Status:    domain.ExportPending,
		Format:    "pdf",
		CreatedAt: now,
		UpdatedAt: now,
	}

	pdf, err := e.renderPDF(ctx, view)
	job.UpdatedAt = time.Now()
	if err != nil {
		job.Status = domain.ExportFailed
		job.Error = err.Error()
	} else {
		job.Status = domain.ExportCompleted
		job.SizeBytes = len(pdf)
	}

	// the export log is best-effort
	if serr := e.exports.Save(ctx, job); serr != nil {
		e.log.Warn("failed to record export job", zap.String("job_id", job.ID.String()), zap.Error(serr))
	}

	if err != nil {
		return nil, err
	}
	e.log.Info("exported pdf",
		zap.String("session_id", id.String()),
		zap.String("job_id", job.ID.String()),
		zap.Int("bytes", len(pdf)))
	return pdf, nil
}

// ExportCount returns how many exports were recorded for the session.
func (e *Editor) ExportCount(ctx context.Context, id uuid.UUID) (int, error) {
	if _, err := e.session(id); err != nil {
		return 0, err
	}
	return e.exports.CountBySession(ctx, id)
}

func (e *Editor) renderPDF(ctx context.Context, v View) ([]byte, error) {
	html, err := e.printer.Printable(v)
	if err != nil {
		return nil, err
	}
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}

func (e *Editor) session(id uuid.UUID) (*domain.Session, error) {
	s, ok := e.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

func (e *Editor) snapshot(id uuid.UUID, d *model.Document, changed bool) Snapshot {
	return Snapshot{
		SessionID: id,
		Document:  d,
		View:      RenderWithLimit(d, e.summaryLimit),
		Changed:   changed,
	}
}
