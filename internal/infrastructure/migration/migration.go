package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	log.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			log.Error("Migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		log.Info("Migration completed", zap.String("name", m.Name))
	}

	log.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

func (m Migration) Up(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, m.SQL)
	return err
}

// Migrations returns the schema steps in the order they run. Each step is
// idempotent.
func Migrations() []Migration {
	return []Migration{
		{
			Name: "create_export_jobs",
			SQL: `
				CREATE TABLE IF NOT EXISTS export_jobs (
					id UUID PRIMARY KEY,
					session_id UUID NOT NULL,
					status TEXT NOT NULL,
					format TEXT NOT NULL,
					size_bytes INTEGER NOT NULL DEFAULT 0,
					created_at TIMESTAMPTZ NOT NULL,
					updated_at TIMESTAMPTZ NOT NULL
				);
			`,
		},
		{
			Name: "add_error_to_export_jobs",
			SQL: `
				ALTER TABLE export_jobs
				ADD COLUMN IF NOT EXISTS error TEXT NOT NULL DEFAULT '';
			`,
		},
		{
			Name: "index_export_jobs_session",
			SQL:  `CREATE INDEX IF NOT EXISTS export_jobs_session_id_idx ON export_jobs (session_id);`,
		},
	}
}
