package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arogyam-chatbot/internal/lang"
)

func TestMemoryStoreGetAbsent(t *testing.T) {
	store := NewMemoryStore(0)
	s, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	in := &Session{
		UserID:   "alice",
		Awaiting: AwaitingDuration,
		LastFact: "fever fact",
		Lang:     lang.Hinglish,
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, *in, *out)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	require.NoError(t, store.Save(ctx, &Session{UserID: "alice", Awaiting: AwaitingDuration}))

	first, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	first.Duration = "mutated"

	second, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, second.Duration, "mutating a returned session must not leak into the store")
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	require.NoError(t, store.Save(ctx, &Session{UserID: "alice", Awaiting: AwaitingDuration}))
	require.NoError(t, store.Save(ctx, &Session{UserID: "alice", Awaiting: AwaitingSeverity, Duration: "3 days"}))

	s, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, AwaitingSeverity, s.Awaiting)
	assert.Equal(t, "3 days", s.Duration)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	require.NoError(t, store.Save(ctx, &Session{UserID: "alice", Awaiting: AwaitingDuration}))
	require.NoError(t, store.Delete(ctx, "alice"))

	s, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, s)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, "alice"))
}
