package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tadeyemo32/persona-backend/models"
)

func newTestStore(t *testing.T) *GormHistoryStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SearchHistoryEntry{}, &models.SearchIndexEntry{}))
	return NewGormHistoryStore(db)
}

func testEntry(id, userID string, createdAt time.Time) *models.SearchHistoryEntry {
	return &models.SearchHistoryEntry{
		ID:        id,
		Query:     models.SearchQuery{PersonName: "Jane Doe", CompanyName: "Acme"},
		Data:      models.EnrichmentData{Title: "Jane Doe at Acme"},
		CreatedAt: createdAt,
		UserID:    userID,
	}
}

func TestStoreGetAbsent(t *testing.T) {
	store := newTestStore(t)

	entry, err := store.Get("no-such-fingerprint")
	require.NoError(t, err, "absence is not an error")
	assert.Nil(t, entry)
}

func TestStorePutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	in := testEntry("fp-1", "u1", now)
	require.NoError(t, store.Put(in))

	out, err := store.Get("fp-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "fp-1", out.ID)
	assert.Equal(t, "u1", out.UserID)
	assert.Equal(t, in.Query, out.Query)
	assert.Equal(t, in.Data.Title, out.Data.Title)
	assert.WithinDuration(t, now, out.CreatedAt, time.Second)
}

func TestStorePutOverwritesSameKey(t *testing.T) {
	store := newTestStore(t)
	base := time.Now().UTC()

	require.NoError(t, store.Put(testEntry("fp-1", "u1", base)))

	refreshed := testEntry("fp-1", "u1", base.Add(3*time.Hour))
	refreshed.Data.Title = "Jane Doe at Acme (refreshed)"
	require.NoError(t, store.Put(refreshed))

	out, err := store.Get("fp-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Jane Doe at Acme (refreshed)", out.Data.Title)
	// The whole row is replaced, timestamp included; a refresh that keeps
	// the old created_at would be permanently stale.
	assert.WithinDuration(t, base.Add(3*time.Hour), out.CreatedAt, time.Second)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1, "refresh replaces, never duplicates")
}

func TestStoreListIndexConsistency(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().UTC()

	want := map[string]bool{}
	for _, id := range []string{"fp-a", "fp-b", "fp-c"} {
		require.NoError(t, store.Put(testEntry(id, "u1", now)))
		want[id] = true
	}
	// Overwrite one of them; the index must not grow.
	require.NoError(t, store.Put(testEntry("fp-b", "u1", now.Add(time.Minute))))

	entries, err := store.List()
	require.NoError(t, err)

	got := map[string]bool{}
	for _, e := range entries {
		assert.False(t, got[e.ID], "duplicate listing for %s", e.ID)
		got[e.ID] = true
	}
	assert.Equal(t, want, got)
}

func TestStoreListByOwner(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Put(testEntry("fp-old", "u1", base)))
	require.NoError(t, store.Put(testEntry("fp-new", "u1", base.Add(time.Hour))))
	require.NoError(t, store.Put(testEntry("fp-other", "u2", base.Add(2*time.Hour))))
	// Same timestamp as fp-new: tie broken by fingerprint ascending.
	require.NoError(t, store.Put(testEntry("fp-also-new", "u1", base.Add(time.Hour))))

	entries, err := store.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, entries, 3, "other owners' records are filtered out")

	ids := []string{entries[0].ID, entries[1].ID, entries[2].ID}
	assert.Equal(t, []string{"fp-also-new", "fp-new", "fp-old"}, ids)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].CreatedAt.After(entries[i-1].CreatedAt),
			"history must be non-increasing in createdAt")
	}
}
