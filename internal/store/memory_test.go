package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateStampsTimestamp(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Create(ctx, Events, map[string]any{"title": "Fair"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := m.Get(ctx, Events, id)
	require.NoError(t, err)
	assert.Equal(t, "Fair", doc.Fields["title"])

	ts, ok := doc.Fields[TimestampField].(time.Time)
	require.True(t, ok, "timestamp should be stamped by the store")
	assert.False(t, ts.IsZero())
}

func TestMemoryGetMissingReturnsNotFound(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), Attendance, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySetMergePreservesUnspecifiedFields(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SetMerge(ctx, Circulars, "c-1", map[string]any{"title": "Holiday", "details": "Campus closed"}))
	require.NoError(t, m.SetMerge(ctx, Circulars, "c-1", map[string]any{"details": "Campus closed Monday"}))

	doc, err := m.Get(ctx, Circulars, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Holiday", doc.Fields["title"], "unspecified field must survive the merge")
	assert.Equal(t, "Campus closed Monday", doc.Fields["details"])
}

func TestMemorySetMergeIsIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	fields := map[string]any{"title": "Results", "details": "Semester 1"}
	require.NoError(t, m.SetMerge(ctx, Results, "r-1", fields))
	require.NoError(t, m.SetMerge(ctx, Results, "r-1", fields))

	docs, err := m.ListAll(ctx, Results, true)
	require.NoError(t, err)
	require.Len(t, docs, 1, "repeating the same merge must yield one logical record")
	assert.Equal(t, "r-1", docs[0].ID)
}

func TestMemoryListAllByTimestampDesc(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.Create(ctx, Events, map[string]any{"title": "first"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := m.Create(ctx, Events, map[string]any{"title": "second"})
	require.NoError(t, err)

	docs, err := m.ListAll(ctx, Events, true)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, second, docs[0].ID)
	assert.Equal(t, first, docs[1].ID)
}

func TestMemoryListAllSortsByIDWithoutOrdering(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SetMerge(ctx, Attendance, "stu-2", map[string]any{"percentage": 70}))
	require.NoError(t, m.SetMerge(ctx, Attendance, "stu-1", map[string]any{"percentage": 90}))

	docs, err := m.ListAll(ctx, Attendance, false)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "stu-1", docs[0].ID)
	assert.Equal(t, "stu-2", docs[1].ID)
}

func TestMemoryDeleteMissingIsNoError(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Create(ctx, Events, map[string]any{"title": "gone"})
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, Events, id))
	require.NoError(t, m.Delete(ctx, Events, id))

	docs, err := m.ListAll(ctx, Events, true)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCollectionPath(t *testing.T) {
	assert.Equal(t, "artifacts/smartcampus-default/public/data/events",
		CollectionPath("smartcampus-default", Events))
}
