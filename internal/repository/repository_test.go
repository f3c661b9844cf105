package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nightmare-De9/Omegle-Lite/internal/models"
)

func TestClientRepository_RegisterUniqueIDs(t *testing.T) {
	repo := NewClientRepository()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		client := repo.Register()
		require.NotEmpty(t, client.ID)
		_, dup := seen[client.ID]
		require.False(t, dup, "duplicate id %s", client.ID)
		seen[client.ID] = struct{}{}

		assert.Equal(t, models.ModeText, client.Mode)
		assert.Empty(t, client.Interests)
		assert.False(t, client.InRoom())
		assert.True(t, client.QueuedAt.IsZero())
	}

	assert.Equal(t, 100, repo.Count())
}

func TestClientRepository_GetAndUnregister(t *testing.T) {
	repo := NewClientRepository()

	client := repo.Register()
	got, ok := repo.Get(client.ID)
	require.True(t, ok)
	assert.Same(t, client, got)

	repo.Unregister(client.ID)
	_, ok = repo.Get(client.ID)
	assert.False(t, ok)

	// unregistering twice is harmless
	repo.Unregister(client.ID)
}

func TestClientRepository_PartnerOf(t *testing.T) {
	repo := NewClientRepository()

	a := repo.Register()
	b := repo.Register()
	c := repo.Register()

	a.RoomID = "room-1"
	b.RoomID = "room-1"
	c.RoomID = "room-2"

	partner, ok := repo.PartnerOf(a.ID, a.RoomID)
	require.True(t, ok)
	assert.Equal(t, b.ID, partner.ID)

	_, ok = repo.PartnerOf(c.ID, c.RoomID)
	assert.False(t, ok, "lone occupant has no partner")

	_, ok = repo.PartnerOf(a.ID, "")
	assert.False(t, ok)

	assert.Equal(t, 1, repo.RoomCount())
}

func TestWaitQueue_EnqueueIsIdempotent(t *testing.T) {
	queue := NewWaitQueue()
	client := &models.Client{ID: "a", Mode: models.ModeText}

	t1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.True(t, queue.Enqueue(client, t1))
	assert.Equal(t, t1, client.QueuedAt)
	assert.Equal(t, 1, queue.Len(models.ModeText))

	// re-enqueue refreshes the timestamp, membership unchanged
	t2 := t1.Add(3 * time.Second)
	require.True(t, queue.Enqueue(client, t2))
	assert.Equal(t, t2, client.QueuedAt)
	assert.Equal(t, 1, queue.Len(models.ModeText))
}

func TestWaitQueue_RejectsInvalidMode(t *testing.T) {
	queue := NewWaitQueue()
	client := &models.Client{ID: "a", Mode: models.Mode("carrier-pigeon")}

	assert.False(t, queue.Enqueue(client, time.Now()))
	assert.False(t, queue.IsWaiting("a"))
}

func TestWaitQueue_DequeueClearsBothModes(t *testing.T) {
	queue := NewWaitQueue()
	now := time.Now()

	text := &models.Client{ID: "a", Mode: models.ModeText}
	video := &models.Client{ID: "b", Mode: models.ModeVideo}
	queue.Enqueue(text, now)
	queue.Enqueue(video, now)

	// dequeue does not need to know the current mode
	queue.Dequeue("a")
	queue.Dequeue("b")
	queue.Dequeue("never-queued")

	assert.False(t, queue.IsWaiting("a"))
	assert.False(t, queue.IsWaiting("b"))
	assert.Empty(t, queue.Waiting(models.ModeText))
	assert.Empty(t, queue.Waiting(models.ModeVideo))
}

func TestCooldownCache_KeyIsOrderIndependent(t *testing.T) {
	cache := NewCooldownCache()
	now := time.Now()

	cache.Stamp("b", "a", now)

	ts, ok := cache.LastPaired("a", "b")
	require.True(t, ok)
	assert.Equal(t, now, ts)

	ts, ok = cache.LastPaired("b", "a")
	require.True(t, ok)
	assert.Equal(t, now, ts)

	_, ok = cache.LastPaired("a", "c")
	assert.False(t, ok)
}

func TestCooldownCache_Sweep(t *testing.T) {
	cache := NewCooldownCache()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cache.Stamp("a", "b", base)
	cache.Stamp("c", "d", base.Add(10*time.Second))
	require.Equal(t, 2, cache.Len())

	removed := cache.Sweep(base.Add(15*time.Second), 15*time.Second)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, cache.Len())

	_, ok := cache.LastPaired("a", "b")
	assert.False(t, ok)
	_, ok = cache.LastPaired("c", "d")
	assert.True(t, ok)
}
