package postgres

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// bootstrapLockKey serialises concurrent bootstraps across server instances.
const bootstrapLockKey int64 = 0x6a6f6273

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS __migrations (
		key TEXT PRIMARY KEY,
		value TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT NOT NULL,
		salary TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT NOT NULL,
		duration TEXT NOT NULL,
		working_period TEXT,
		contact_phone TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		contact TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

type schemaRepo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewSchemaRepository(db *pgxpool.Pool) domain.SchemaRepository {
	return &schemaRepo{db: db, now: time.Now}
}

// Migrate runs in one transaction. The seed flag is claimed with an
// insert that does nothing on conflict, so only the transaction that wrote
// the flag row inserts the seed jobs.
func (r *schemaRepo) Migrate(ctx context.Context, seed []domain.Job) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, bootstrapLockKey); err != nil {
		return false, fmt.Errorf("failed to take bootstrap lock: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return false, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	now := domain.NewTimestamp(r.now())
	tag, err := tx.Exec(ctx,
		`INSERT INTO __migrations (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
		domain.SeedMigrationKey, now.String())
	if err != nil {
		return false, fmt.Errorf("failed to claim seed flag: %w", err)
	}
	seeded := tag.RowsAffected() == 1

	if seeded {
		for i := range seed {
			job := seed[i]
			if job.CreatedAt.IsZero() {
				job.CreatedAt = now
			}
			if _, err := tx.Exec(ctx, insertJobQuery+` ON CONFLICT (id) DO NOTHING`, jobArgs(&job)...); err != nil {
				return false, fmt.Errorf("failed to seed job %s: %w", job.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return seeded, nil
}
