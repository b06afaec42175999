package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nlitvin/pytrail/internal/models"
	"github.com/nlitvin/pytrail/internal/services"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// one connection, otherwise each pool conn sees its own :memory: database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, RunMigrations(sqlDB, ""))

	store, err := NewSQLiteStore(sqlDB)
	require.NoError(t, err)
	return store
}

func testUser(username, email string) *models.User {
	return &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: []byte("hash"),
		CreatedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestCreateUserAssignsIDAndEnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	u := testUser("alice", "a@example.com")
	require.NoError(t, store.CreateUser(ctx, u))
	assert.Equal(t, int64(1), u.ID)

	err := store.CreateUser(ctx, testUser("alice", "other@example.com"))
	assert.ErrorIs(t, err, services.ErrDuplicateUser)

	err = store.CreateUser(ctx, testUser("bob", "a@example.com"))
	assert.ErrorIs(t, err, services.ErrDuplicateUser)
}

func TestFindUserByUsername(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.CreateUser(ctx, testUser("alice", "a@example.com")))

	got, err := store.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@example.com", got.Email)
	assert.Equal(t, []byte("hash"), got.PasswordHash)

	missing, err := store.FindUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpsertProgressKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	u := testUser("alice", "a@example.com")
	require.NoError(t, store.CreateUser(ctx, u))

	first := &models.ProgressRecord{
		UserID: u.ID, ModuleID: 1, Completed: false, Score: 40, TimeSpentSec: 60,
		LastAccessed: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.UpsertProgress(ctx, first))

	second := &models.ProgressRecord{
		UserID: u.ID, ModuleID: 1, Completed: true, Score: 100, TimeSpentSec: 300,
		LastAccessed: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.UpsertProgress(ctx, second))

	recs, err := store.ListProgressByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Completed)
	assert.Equal(t, 100, recs[0].Score)
	assert.Equal(t, 300, recs[0].TimeSpentSec)
}

func TestListProgressOrderedByModule(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	u := testUser("alice", "a@example.com")
	require.NoError(t, store.CreateUser(ctx, u))

	now := time.Now().UTC()
	for _, moduleID := range []int{3, 1, 2} {
		rec := &models.ProgressRecord{UserID: u.ID, ModuleID: moduleID, Score: moduleID, LastAccessed: now}
		require.NoError(t, store.UpsertProgress(ctx, rec))
	}

	recs, err := store.ListProgressByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for i, rec := range recs {
		assert.Equal(t, i+1, rec.ModuleID)
	}
}

func TestDeleteUserCascadesProgress(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	u := testUser("alice", "a@example.com")
	require.NoError(t, store.CreateUser(ctx, u))
	rec := &models.ProgressRecord{UserID: u.ID, ModuleID: 1, Score: 10, LastAccessed: time.Now().UTC()}
	require.NoError(t, store.UpsertProgress(ctx, rec))

	deleted, err := store.DeleteUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, deleted)

	recs, err := store.ListProgressByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, recs)

	deleted, err = store.DeleteUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, deleted)
}
