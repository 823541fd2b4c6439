package history

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/webstash/internal/storage"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:historytest%d?mode=memory&cache=shared", dbSeq)
	db, err := storage.Open(context.Background(), dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_NeverLoggedIn_ReturnsEmpty(t *testing.T) {
	l := NewLedger(setupDB(t))

	entries, err := l.Load(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecord_AppendsInChronologicalOrder(t *testing.T) {
	l := NewLedger(setupDB(t))
	ctx := context.Background()

	got, err := l.Record(ctx, "alice", "T1")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, got)

	got, err = l.Record(ctx, "alice", "T2")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2"}, got)

	loaded, err := l.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2"}, loaded)
}

func TestRecord_EvictsOldestBeyondCap(t *testing.T) {
	l := NewLedger(setupDB(t))
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		_, err := l.Record(ctx, "bob", fmt.Sprintf("T%d", i))
		require.NoError(t, err)
	}

	entries, err := l.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"T2", "T3", "T4", "T5", "T6"}, entries)
}

func TestRecord_NeverExceedsCap(t *testing.T) {
	l := NewLedger(setupDB(t))
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		entries, err := l.Record(ctx, "carol", fmt.Sprintf("T%d", i))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(entries), maxEntries)
	}
}

func TestRecord_HistoriesArePerUser(t *testing.T) {
	l := NewLedger(setupDB(t))
	ctx := context.Background()

	_, err := l.Record(ctx, "alice", "A1")
	require.NoError(t, err)
	_, err = l.Record(ctx, "bob", "B1")
	require.NoError(t, err)

	aliceEntries, err := l.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, aliceEntries)

	bobEntries, err := l.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, bobEntries)
}
