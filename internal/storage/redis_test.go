package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpicyMarinara/rpg-companion/pkg/session"
)

func newTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRedisStorage(mr.Addr(), time.Hour, logger), mr
}

func TestRedisStoragePing(t *testing.T) {
	store, _ := newTestRedis(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestRedisStorageSessionLifecycle(t *testing.T) {
	store, _ := newTestRedis(t)
	ctx := context.Background()

	s := session.New("tavern night")
	r := s.Registry()
	m := r.GetManager("aldric")
	require.True(t, m.SetArchetype("HERO"))
	m.RecordInteraction("sacrifice", 1.0, "held the gate")
	s.Capture(r)

	require.NoError(t, store.SaveSession(ctx, s))

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, s.ID, loaded.ID)
	assert.Equal(t, "tavern night", loaded.Name)

	restored := loaded.Registry().GetManager("aldric")
	assert.Equal(t, "HERO", restored.Archetype())
	assert.Equal(t, 7.0, restored.Points())

	require.NoError(t, store.DeleteSession(ctx, s.ID))
	gone, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRedisStorageLoadMissing(t *testing.T) {
	store, _ := newTestRedis(t)

	s, err := store.LoadSession(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestRedisStorageListSessions(t *testing.T) {
	store, _ := newTestRedis(t)
	ctx := context.Background()

	want := make(map[uuid.UUID]bool)
	for i := 0; i < 3; i++ {
		s := session.New("")
		require.NoError(t, store.SaveSession(ctx, s))
		want[s.ID] = true
	}

	ids, err := store.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
	for _, id := range ids {
		assert.True(t, want[id], "unexpected session id %s", id)
	}
}

func TestRedisStorageSessionExpiry(t *testing.T) {
	store, mr := newTestRedis(t)
	ctx := context.Background()

	s := session.New("short-lived")
	require.NoError(t, store.SaveSession(ctx, s))

	mr.FastForward(2 * time.Hour)

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
