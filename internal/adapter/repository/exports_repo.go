package repository

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	saveJobSQL = `INSERT INTO export_jobs (id, session_id, status, format, size_bytes, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, size_bytes = EXCLUDED.size_bytes, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`

	countBySessionSQL = `SELECT count(*) FROM export_jobs WHERE session_id = $1`
)

// ExportsRepo records PDF export jobs. With a nil pool every call is a
// no-op, so the service runs without a database.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, saveJobSQL,
		j.ID, j.SessionID, j.Status, j.Format, j.SizeBytes, j.Error, j.CreatedAt, j.UpdatedAt)
	return err
}

// CountBySession returns how many exports were recorded for a session.
func (r *ExportsRepo) CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	if r.pool == nil {
		return 0, nil
	}
	var n int
	err := r.pool.QueryRow(ctx, countBySessionSQL, sessionID).Scan(&n)
	return n, err
}
