package domain

import "context"

// SeedMigrationKey marks the one-time seeding of the jobs table.
const SeedMigrationKey = "seeded_jobs"

// SchemaRepository creates the tables and seeds them. Migrate must be safe to
// call concurrently and repeatedly: seeding happens at most once per store.
type SchemaRepository interface {
	Migrate(ctx context.Context, seed []Job) (seeded bool, err error)
}

type BootstrapUsecase interface {
	Ensure(ctx context.Context) error
}
