package history

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawpoker-server/pkg/db"
	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

func newPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN is not set")
	}

	dbh, err := db.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "../../sql"
	}
	require.NoError(t, db.MigrateDB(dbh, migrationsPath))

	return NewPostgresStore(dbh)
}

func TestPostgresStore(t *testing.T) {
	a := assert.New(t)
	store := newPostgresStore(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	ended := time.Now().Add(time.Hour).Truncate(time.Millisecond).UTC()
	res := &fivecarddraw.GameResult{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		GameNumber: 1,
		Winner:     2,
		Pot:        120,
		Money:      [2]int{940, 1060},
		Ended:      ended,
		Hands:      map[int]string{1: "2c,3c,4c,5c,7d", 2: "14s,14h,13c,13d,2s"},
		Ranks:      map[int]string{1: "High card Seven", 2: "Two pair, Aces and Kings, kicker Two"},
	}

	a.NoError(store.Save(ctx, res))
	a.Equal(ErrDuplicateResult, store.Save(ctx, res))

	recent, err := store.Recent(ctx, 1)
	a.NoError(err)
	if a.Len(recent, 1) {
		got := recent[0]
		a.Equal(res.ID, got.ID)
		a.Equal(sessionID, got.SessionID)
		a.Equal(120, got.Pot)
		a.Equal([2]int{940, 1060}, got.Money)
		a.Equal(res.Hands, got.Hands)
		a.Equal(res.Ranks, got.Ranks)
		a.True(ended.Equal(got.Ended))
	}
}
