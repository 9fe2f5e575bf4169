package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
)

type note struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

func decodeNotes(t *testing.T, docs []Document) []note {
	t.Helper()
	out := make([]note, 0, len(docs))
	for _, doc := range docs {
		var n note
		require.NoError(t, json.Unmarshal(doc, &n))
		out = append(out, n)
	}
	return out
}

func TestMemoryStoreInsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, kind := range []string{"a", "b", "a"} {
		id, err := store.InsertOne(ctx, "notes", note{
			ID:        fmt.Sprintf("n%d", i),
			Kind:      kind,
			Pinned:    i == 0,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("n%d", i), id)
	}

	doc, err := store.FindOne(ctx, "notes", ByID("n1"))
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.JSONEq(t, `{"id":"n1","kind":"b","pinned":false,"created_at":"2025-01-01T01:00:00Z"}`, string(doc))

	missing, err := store.FindOne(ctx, "notes", ByID("nope"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	docs, err := store.FindMany(ctx, "notes", Filter{"kind": "a"}, FindOptions{SortKey: "created_at", SortDir: Descending})
	require.NoError(t, err)
	notes := decodeNotes(t, docs)
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].ID)
	assert.Equal(t, "n0", notes[1].ID)

	docs, err = store.FindMany(ctx, "notes", Filter{"pinned": true}, FindOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	n, err := store.CountDocuments(ctx, "notes", Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestMemoryStoreFindManyLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	docs := make([]any, 0, 5)
	for i := 0; i < 5; i++ {
		docs = append(docs, note{ID: fmt.Sprintf("n%d", i), CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	inserted, err := store.InsertMany(ctx, "notes", docs)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)

	found, err := store.FindMany(ctx, "notes", Filter{}, FindOptions{SortKey: "created_at", SortDir: Ascending, Limit: 2})
	require.NoError(t, err)
	notes := decodeNotes(t, found)
	require.Len(t, notes, 2)
	assert.Equal(t, "n0", notes[0].ID)
	assert.Equal(t, "n1", notes[1].ID)
}

func TestFindOptionsLimitIsCapped(t *testing.T) {
	assert.Equal(t, MaxListLimit, FindOptions{}.limit())
	assert.Equal(t, MaxListLimit, FindOptions{Limit: MaxListLimit + 1}.limit())
	assert.Equal(t, 10, FindOptions{Limit: 10}.limit())
}

func TestMemoryStoreUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.InsertOne(ctx, "notes", note{ID: "n1", Kind: "a"})
	require.NoError(t, err)

	matched, err := store.UpdateOne(ctx, "notes", ByID("n1"), map[string]any{"kind": "b"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, matched)

	matched, err = store.UpdateOne(ctx, "notes", ByID("n2"), map[string]any{"kind": "b"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, matched)

	doc, err := store.FindOne(ctx, "notes", ByID("n1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"n1","kind":"b","pinned":false,"created_at":"0001-01-01T00:00:00Z"}`, string(doc))

	deleted, err := store.DeleteOne(ctx, "notes", ByID("n1"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = store.DeleteOne(ctx, "notes", ByID("n1"))
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}

func TestMemoryStoreRejectsDocumentWithoutID(t *testing.T) {
	_, err := NewMemoryStore().InsertOne(context.Background(), "notes", note{Kind: "a"})
	require.Error(t, err)
	assert.True(t, errs.IsStoreUnavailable(err))
}

func TestMemoryStoreClosed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Close())

	_, err := store.FindMany(ctx, "notes", Filter{}, FindOptions{})
	require.Error(t, err)
	assert.True(t, errs.IsStoreUnavailable(err))

	_, err = store.InsertOne(ctx, "notes", note{ID: "n1"})
	assert.True(t, errs.IsStoreUnavailable(err))
}

func TestMemoryStoreConcurrentReadsAndUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		_, err := store.InsertOne(ctx, "notes", note{ID: fmt.Sprintf("n%d", i), CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			docs, err := store.FindMany(ctx, "notes", Filter{}, FindOptions{SortKey: "created_at", SortDir: Descending})
			assert.NoError(t, err)
			assert.Len(t, docs, 10)
		}()
		go func(i int) {
			defer wg.Done()
			_, err := store.UpdateOne(ctx, "notes", ByID(fmt.Sprintf("n%d", i%10)), map[string]any{
				"kind":       fmt.Sprintf("k%d", i),
				"created_at": base.Add(time.Duration(i) * time.Second),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}
