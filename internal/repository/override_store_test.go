package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/lumina-reserve/backend/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storedEvents = []models.Event{
	{ID: "1700000000001", Title: "Latte Art Night", Date: "2024-02-01", Description: "Pour hearts.", Price: "$25", Image: "img.jpg"},
	{ID: "1700000000002", Title: "Jazz Brunch", Date: "2024-02-08", Description: "Live trio.", Price: "$40", Image: "jazz.jpg"},
}

// exerciseStore runs the shared contract every override store must meet
func exerciseStore(t *testing.T, store OverrideStore) {
	t.Helper()
	ctx := context.Background()

	events, err := store.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events, "an unwritten store reads as empty")

	require.NoError(t, store.Save(ctx, storedEvents))

	events, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, storedEvents, events)

	require.NoError(t, store.Save(ctx, storedEvents[1:]))

	events, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, storedEvents[1:], events, "save rewrites the entry wholesale")

	require.NoError(t, store.Save(ctx, nil))

	events, err = store.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestInMemoryOverrideStore(t *testing.T) {
	exerciseStore(t, NewInMemoryOverrideStore())
}

func TestFileOverrideStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mock_events.json")
	exerciseStore(t, NewFileOverrideStore(path))
}

func TestFileOverrideStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mock_events.json")
	ctx := context.Background()

	require.NoError(t, NewFileOverrideStore(path).Save(ctx, storedEvents))

	events, err := NewFileOverrideStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, storedEvents, events)
}

func TestFileOverrideStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mock_events.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileOverrideStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptOverrides)
}

func TestRedisOverrideStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisOverrideStore(client, "mockEvents")
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)

	raw, err := mr.Get("mockEvents")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestRedisOverrideStore_Corrupt(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("mockEvents", "oops"))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisOverrideStore(client, "mockEvents")
	t.Cleanup(func() { _ = store.Close() })

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptOverrides)
}
