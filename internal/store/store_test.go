package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSeedSystemCategories(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

	require.NoError(t, db.SeedSystemCategories(now))

	cats, err := db.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, 5)

	// Fixed ids and deterministic sort order 0..4.
	for i, kind := range SystemKinds {
		assert.Equal(t, string(kind), cats[i].ID)
		assert.Equal(t, kind.LocalizationKey(), cats[i].Name)
		assert.Equal(t, i, cats[i].SortOrder)
	}

	// Seeding is a no-op once any category exists.
	require.NoError(t, db.SeedSystemCategories(now.Add(time.Hour)))
	cats, err = db.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 5)
}

func TestInsertAndListEvents(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	// Insert out of order; ListEvents returns end-date ascending.
	later := WaitEvent{
		ID:         "later",
		StartDate:  base.Add(2 * time.Hour),
		EndDate:    base.Add(3 * time.Hour),
		CategoryID: "digital",
		CreatedAt:  base,
	}
	earlier := WaitEvent{
		ID:         "earlier",
		StartDate:  base,
		EndDate:    base.Add(10 * time.Minute),
		CategoryID: "physical",
		CreatedAt:  base,
	}
	require.NoError(t, db.InsertEvent(&later))
	require.NoError(t, db.InsertEvent(&earlier))

	events, err := db.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "earlier", events[0].ID)
	assert.Equal(t, "later", events[1].ID)
	assert.True(t, events[0].EndDate.Equal(base.Add(10*time.Minute)))

	n, err := db.CountEvents()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestListRecentEvents(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		e := WaitEvent{
			ID:         string(rune('a' + i)),
			StartDate:  base.Add(time.Duration(i) * time.Hour),
			EndDate:    base.Add(time.Duration(i)*time.Hour + time.Minute),
			CategoryID: "digital",
			CreatedAt:  base,
		}
		require.NoError(t, db.InsertEvent(&e))
	}

	events, err := db.ListRecentEvents(3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "e", events[0].ID)
	assert.Equal(t, "c", events[2].ID)
}

func TestDeleteEvent(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	e := WaitEvent{ID: "gone", StartDate: base, EndDate: base.Add(time.Minute), CategoryID: "x", CreatedAt: base}
	require.NoError(t, db.InsertEvent(&e))
	require.NoError(t, db.DeleteEvent("gone"))

	n, err := db.CountEvents()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.Error(t, db.DeleteEvent("gone"), "deleting a missing event should fail")
}

func TestMaxSortOrder(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

	max, err := db.MaxSortOrder()
	require.NoError(t, err)
	assert.Equal(t, -1, max, "empty table reports -1")

	require.NoError(t, db.SeedSystemCategories(now))
	max, err = db.MaxSortOrder()
	require.NoError(t, err)
	assert.Equal(t, 4, max)

	custom := WaitCategory{ID: "c1", Name: "school run", Kind: KindCustom, SortOrder: max + 1, CreatedAt: now}
	require.NoError(t, db.InsertCategory(&custom))
	max, err = db.MaxSortOrder()
	require.NoError(t, err)
	assert.Equal(t, 5, max)
}

func TestDurationSecondsClamped(t *testing.T) {
	base := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	ok := WaitEvent{StartDate: base, EndDate: base.Add(90 * time.Second)}
	assert.Equal(t, 90.0, ok.DurationSeconds())

	backwards := WaitEvent{StartDate: base, EndDate: base.Add(-90 * time.Second)}
	assert.Equal(t, 0.0, backwards.DurationSeconds())
}

func TestEventRoundTrip(t *testing.T) {
	db := newTestDB(t)
	start := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	e := WaitEvent{
		ID:         "rt",
		StartDate:  start,
		EndDate:    start.Add(42 * time.Second),
		CategoryID: "social",
		CreatedAt:  start.Add(time.Minute),
	}
	require.NoError(t, db.InsertEvent(&e))

	events, err := db.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, e.ID, got.ID)
	assert.True(t, got.StartDate.Equal(e.StartDate))
	assert.True(t, got.EndDate.Equal(e.EndDate))
	assert.Equal(t, e.CategoryID, got.CategoryID)
	assert.Equal(t, 42.0, got.DurationSeconds())
}
