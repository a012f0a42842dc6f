package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/infrastructure/migration"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportsRepo_NilPoolIsNoop(t *testing.T) {
	r := NewExportsRepo(nil)
	ctx := context.Background()
	sid := uuid.New()

	err := r.Save(ctx, &domain.ExportJob{
		ID:        uuid.New(),
		SessionID: sid,
		Status:    domain.ExportCompleted,
		Format:    "pdf",
		SizeBytes: 1024,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	n, err := r.CountBySession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountBySessionSQL_ComparesColumnDirectly(t *testing.T) {
	// a cast on session_id would bypass export_jobs_session_id_idx
	assert.NotContains(t, countBySessionSQL, "::")
	assert.Contains(t, countBySessionSQL, "session_id = $1")
}

// Runs against a real database when EXPORTS_TEST_DATABASE_URL is set.
func TestExportsRepo_Postgres(t *testing.T) {
	dsn := os.Getenv("EXPORTS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("EXPORTS_TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, migration.RunMigrations(ctx, pool, zap.NewNop()))

	r := NewExportsRepo(pool)
	sid := uuid.New()
	now := time.Now().UTC()
	job := &domain.ExportJob{
		ID:        uuid.New(),
		SessionID: sid,
		Status:    domain.ExportPending,
		Format:    "pdf",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, r.Save(ctx, job))

	job.Status = domain.ExportCompleted
	job.SizeBytes = 2048
	require.NoError(t, r.Save(ctx, job))
	require.NoError(t, r.Save(ctx, &domain.ExportJob{
		ID:        uuid.New(),
		SessionID: sid,
		Status:    domain.ExportFailed,
		Format:    "pdf",
		Error:     "chrome not found",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	n, err := r.CountBySession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = r.CountBySession(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
