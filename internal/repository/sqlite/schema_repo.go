package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
)

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
	db  *sql.DB
	now func() time.Time
}

func NewSchemaRepository(db *sql.DB) domain.SchemaRepository {
	return &schemaRepo{db: db, now: time.Now}
}

// Migrate relies on the connection opening immediate transactions, which
// take the write lock up front, so concurrent bootstraps queue instead of
// racing on the seed flag.
func (r *schemaRepo) Migrate(ctx context.Context, seed []domain.Job) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return false, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	now := domain.NewTimestamp(r.now())
	res, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO __migrations (key, value) VALUES (?, ?)`,
		domain.SeedMigrationKey, now.String())
	if err != nil {
		return false, fmt.Errorf("failed to claim seed flag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	seeded := n == 1

	if seeded {
		query := `INSERT OR IGNORE` + insertJobQuery[len("INSERT"):]
		for i := range seed {
			job := seed[i]
			if job.CreatedAt.IsZero() {
				job.CreatedAt = now
			}
			if err := insertJob(ctx, tx, query, &job); err != nil {
				return false, fmt.Errorf("failed to seed job %s: %w", job.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return seeded, nil
}
