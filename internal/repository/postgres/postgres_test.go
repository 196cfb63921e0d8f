package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/seed"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/nanoid"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openPool connects to DATABASE_URL with a throwaway schema on the search
// path, so every test starts from an empty database.
func openPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()

	admin, err := database.NewPostgresConnection(ctx, url)
	require.NoError(t, err)
	t.Cleanup(admin.Close)

	schema := "jobboard_test_" + nanoid.Lower(8)
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
	})

	cfg, err := pgxpool.ParseConfig(url)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestMigrateSeedsOnce(t *testing.T) {
	ctx := context.Background()
	pool := openPool(t)
	schema := NewSchemaRepository(pool)
	jobs := NewJobRepository(pool)

	seeded, err := schema.Migrate(ctx, seed.Jobs())
	require.NoError(t, err)
	assert.True(t, seeded)

	first, err := jobs.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, first, len(seed.Jobs()))

	seeded, err = schema.Migrate(ctx, seed.Jobs())
	require.NoError(t, err)
	assert.False(t, seeded)

	second, err := jobs.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMigrateConcurrent(t *testing.T) {
	ctx := context.Background()
	pool := openPool(t)

	var wg sync.WaitGroup
	results := make([]bool, 4)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// separate repositories, as separate server instances would have
			seeded, err := NewSchemaRepository(pool).Migrate(ctx, seed.Jobs())
			assert.NoError(t, err)
			results[i] = seeded
		}()
	}
	wg.Wait()

	claimed := 0
	for _, r := range results {
		if r {
			claimed++
		}
	}
	assert.Equal(t, 1, claimed)

	all, err := NewJobRepository(pool).Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(seed.Jobs()))
}

func TestJobOrdering(t *testing.T) {
	ctx := context.Background()
	pool := openPool(t)
	_, err := NewSchemaRepository(pool).Migrate(ctx, nil)
	require.NoError(t, err)
	repo := NewJobRepository(pool)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	insert := func(id string, at time.Time) {
		require.NoError(t, repo.Create(ctx, &domain.Job{
			ID: id, Title: "t", Company: "c", Location: "l", Salary: "s", Type: "焊工",
			Description: "d", Duration: "长期", CreatedAt: domain.NewTimestamp(at),
			WorkingPeriod: domain.StringPtr("8:00-17:00"),
		}))
	}
	insert("b", base)
	insert("a", base)
	insert("z", base.Add(-time.Hour))
	insert("n", base.Add(time.Minute))

	jobs, err := repo.Fetch(ctx)
	require.NoError(t, err)
	var ids []string
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []string{"n", "a", "b", "z"}, ids)
	assert.Equal(t, "8:00-17:00", *jobs[0].WorkingPeriod)
	assert.Nil(t, jobs[0].ContactPhone)
	assert.Equal(t, domain.NewTimestamp(base.Add(time.Minute)), jobs[0].CreatedAt)

	assert.Error(t, repo.Create(ctx, &jobs[0]), "duplicate id must be rejected")
}

func TestMessages(t *testing.T) {
	ctx := context.Background()
	pool := openPool(t)
	_, err := NewSchemaRepository(pool).Migrate(ctx, nil)
	require.NoError(t, err)
	repo := NewMessageRepository(pool)

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &domain.Message{ID: "m1", Content: "旧", Contact: "a", CreatedAt: domain.NewTimestamp(now.Add(-time.Second))}))
	require.NoError(t, repo.Create(ctx, &domain.Message{ID: "m2", Content: "新", Contact: "b", CreatedAt: domain.NewTimestamp(now)}))

	messages, err := repo.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m2", messages[0].ID)
	assert.Equal(t, "m1", messages[1].ID)
}
