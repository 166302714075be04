package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientportal/internal/domain/entities"
	"clientportal/internal/infrastructure/kvstore"
)

func TestContentKVRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContentKVRepository(kvstore.NewMemoryStore())

	empty, err := repo.List(ctx, entities.ContentCategoryReports)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, err := repo.Add(ctx, entities.ContentItem{Category: entities.ContentCategoryReports, Title: "Q1", Type: entities.ContentTypeLink, URL: "https://x"})
	require.NoError(t, err)
	b, err := repo.Add(ctx, entities.ContentItem{Category: entities.ContentCategoryReports, Title: "Q2", Type: entities.ContentTypeLink, URL: "https://y"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	removed, ok, err := repo.Delete(ctx, entities.ContentCategoryReports, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Q1", removed.Title)

	list, err := repo.List(ctx, entities.ContentCategoryReports)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	_, ok, err = repo.Delete(ctx, entities.ContentCategoryReports, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTrackingKVRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("event key layout", func(t *testing.T) {
		at := time.Unix(0, 1_700_000_000_000_000_000)
		k := eventKey(entities.TrackingEvent{Type: entities.TrackingTargetPortal, ID: "p1", Section: "reports", Event: "view", OccurredAt: at})
		assert.True(t, strings.HasPrefix(k, "track:portal:p1:reports:view:1700000000000000000-"), k)

		k = eventKey(entities.TrackingEvent{Type: entities.TrackingTargetProposal, ID: "x", Event: "open", OccurredAt: at})
		assert.True(t, strings.HasPrefix(k, "track:proposal:x:open:1700000000000000000-"), k)
	})

	t.Run("aggregate counters and retention", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		store := kvstore.NewMemoryStore()
		store.SetClock(func() time.Time { return now })
		repo := NewTrackingKVRepository(store)

		n, err := repo.Increment(ctx, entities.TrackingTargetProposal, "x", "open_count")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		n, _ = repo.Increment(ctx, entities.TrackingTargetProposal, "x", "open_count")
		assert.Equal(t, int64(2), n)
		require.NoError(t, repo.SetFields(ctx, entities.TrackingTargetProposal, "x", map[string]string{"latest_event": "open"}))
		require.NoError(t, repo.Touch(ctx, entities.TrackingTargetProposal, "x"))

		stats, err := repo.Stats(ctx, entities.TrackingTargetProposal, "x")
		require.NoError(t, err)
		assert.Equal(t, "2", stats["open_count"])
		assert.Equal(t, "open", stats["latest_event"])

		now = now.Add(entities.TrackingRetention + time.Second)
		stats, err = repo.Stats(ctx, entities.TrackingTargetProposal, "x")
		require.NoError(t, err)
		assert.Empty(t, stats)
	})
}
