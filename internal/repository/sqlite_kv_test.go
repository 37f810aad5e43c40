package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/slacalc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKVRepo_PutAndGet(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "sla_historico", `[]`))

	v, err := repo.Get(ctx, "sla_historico")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestKVRepo_PutOverwrites(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "one"))
	require.NoError(t, repo.Put(ctx, "k", "two"))

	v, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestKVRepo_Delete(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "v"))
	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Delete(ctx, "k"), "deleting a missing key is not an error")

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKVRepo_InsideTransaction(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	tx, err := database.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteKVRepo(tx).Put(ctx, "k", "uncommitted"))
	require.NoError(t, tx.Rollback())

	_, err = NewSQLiteKVRepo(database).Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKVRepo_Keys_Sorted(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "b", "2"))
	require.NoError(t, repo.Put(ctx, "a", "1"))

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}
