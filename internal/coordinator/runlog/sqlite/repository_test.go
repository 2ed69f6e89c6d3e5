package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-integration/internal/coordinator/runlog"
)

func openTemp(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "runlog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepository_SaveAndGetLatest(t *testing.T) {
	ctx := context.Background()
	repo := openTemp(t)

	require.NoError(t, repo.Save(ctx, runlog.NewEntry(ctx, "b1", "r1", runlog.StatusStarted, "", `{"id":"r1"}`, nil)))
	require.NoError(t, repo.Save(ctx, runlog.NewEntry(ctx, "b1", "r1", runlog.StatusStepDone, "provision_customer", "", nil)))
	require.NoError(t, repo.Save(ctx, runlog.NewEntry(ctx, "b1", "r1", runlog.StatusFailed, "place_order", "", []string{"boom"})))

	latest, err := repo.GetLatest(ctx, "b1", "r1")
	require.NoError(t, err)
	assert.Equal(t, runlog.StatusFailed, latest.Status)
	assert.Equal(t, "place_order", latest.Step)
	assert.Equal(t, `["boom"]`, latest.ErrorMessages)
	assert.Empty(t, latest.Payload)
	assert.False(t, latest.UpdatedAt.IsZero())
}

func TestRepository_GetLatestNotFound(t *testing.T) {
	repo := openTemp(t)

	_, err := repo.GetLatest(context.Background(), "b1", "missing")
	require.ErrorIs(t, err, runlog.ErrNotFound)
}

func TestRepository_ListBatch(t *testing.T) {
	ctx := context.Background()
	repo := openTemp(t)

	require.NoError(t, repo.Save(ctx, runlog.NewEntry(ctx, "b1", "r1", runlog.StatusStarted, "", `{"id":"r1"}`, nil)))
	require.NoError(t, repo.Save(ctx, runlog.NewEntry(ctx, "b2", "r9", runlog.StatusStarted, "", "", nil)))
	require.NoError(t, repo.Save(ctx, runlog.NewEntry(ctx, "b1", "r2", runlog.StatusSkipped, "", "", []string{"conflict"})))

	entries, err := repo.ListBatch(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "r1", entries[0].RecordID)
	assert.Equal(t, `{"id":"r1"}`, entries[0].Payload)
	assert.Equal(t, runlog.StatusSkipped, entries[1].Status)

	none, err := repo.ListBatch(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, none)
}
