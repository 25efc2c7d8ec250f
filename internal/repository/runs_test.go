package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolu-akinola/paystub-tracker/internal/common"
	"github.com/tolu-akinola/paystub-tracker/internal/entity"
)

func newTestRepo(t *testing.T) *SQLiteRuns {
	t.Helper()
	repo, err := NewSQLiteRuns(filepath.Join(t.TempDir(), "runs.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testRun(hash string) *entity.ExtractionRun {
	return &entity.ExtractionRun{
		ID:         uuid.New(),
		SourcePath: "/stubs/jan.pdf",
		FileHash:   hash,
		PayDate:    "01/22/2024",
		FieldCount: 12,
		RecordJSON: `{"Pay Date":"01/22/2024"}`,
		Status:     "OK",
		CreatedAt:  time.Now().UTC(),
	}
}

func TestSQLiteRuns_SaveAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run := testRun("abc123")
	require.NoError(t, repo.Save(ctx, run))

	got, err := repo.GetByHash(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "/stubs/jan.pdf", got.SourcePath)
	assert.Equal(t, "01/22/2024", got.PayDate)
	assert.Equal(t, 12, got.FieldCount)
	assert.Equal(t, run.RecordJSON, got.RecordJSON)
}

func TestSQLiteRuns_GetMissing(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetByHash(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteRuns_UpsertByHash(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testRun("abc123")))

	updated := testRun("abc123")
	updated.FieldCount = 20
	require.NoError(t, repo.Save(ctx, updated))

	got, err := repo.GetByHash(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, 20, got.FieldCount)

	runs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestSQLiteRuns_ListRecent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i, hash := range []string{"h1", "h2", "h3"} {
		run := testRun(hash)
		run.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Save(ctx, run))
	}

	runs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "h3", runs[0].FileHash)
	assert.Equal(t, "h2", runs[1].FileHash)
}
