package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testClock is a settable clock for repositories under test.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestDatabase(t *testing.T) (Database, *MemoryStore, *testClock) {
	t.Helper()

	store := NewMemoryStore()
	clock := newTestClock()
	db := New(store, WithClock(clock.Now))
	require.NoError(t, db.Bootstrap(context.Background()))

	return db, store, clock
}

func strPtr(s string) *string {
	return &s
}
