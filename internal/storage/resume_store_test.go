package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func TestMemoryStoreInsertGeneratesID(t *testing.T) {
	store := NewMemoryResumeStore()

	id, err := store.InsertOne(context.Background(), &types.ResumeRecord{FullName: "Jane Smith"})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestMemoryStoreInsertKeepsExistingID(t *testing.T) {
	store := NewMemoryResumeStore()

	id, err := store.InsertOne(context.Background(), &types.ResumeRecord{ID: "fixed-id"})

	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestMemoryStoreFindAllInsertionOrder(t *testing.T) {
	store := NewMemoryResumeStore()
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := store.InsertOne(ctx, &types.ResumeRecord{FullName: name})
		require.NoError(t, err)
	}

	records, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "First", records[0].FullName)
	assert.Equal(t, "Second", records[1].FullName)
	assert.Equal(t, "Third", records[2].FullName)
}

func TestMemoryStoreFindByID(t *testing.T) {
	store := NewMemoryResumeStore()
	ctx := context.Background()

	id, err := store.InsertOne(ctx, &types.ResumeRecord{FullName: "Jane Smith"})
	require.NoError(t, err)

	record, err := store.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", record.FullName)

	_, err = store.FindByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrResumeNotFound)
}

func TestMemoryStoreDeleteByIDs(t *testing.T) {
	store := NewMemoryResumeStore()
	ctx := context.Background()

	id1, _ := store.InsertOne(ctx, &types.ResumeRecord{FullName: "First"})
	id2, _ := store.InsertOne(ctx, &types.ResumeRecord{FullName: "Second"})
	_, err := store.InsertOne(ctx, &types.ResumeRecord{FullName: "Third"})
	require.NoError(t, err)

	deleted, err := store.DeleteByIDs(ctx, []string{id1, id2, "no-such-id"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	records, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Third", records[0].FullName)
}

func TestMemoryStoreDeleteByIDsEmptyInput(t *testing.T) {
	store := NewMemoryResumeStore()

	deleted, err := store.DeleteByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, deleted)
}
