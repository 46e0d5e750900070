package history

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

func result(n int) *fivecarddraw.GameResult {
	return &fivecarddraw.GameResult{
		ID:         "game-" + strconv.Itoa(n),
		SessionID:  "session",
		GameNumber: n,
		Winner:     n%2 + 1,
		Pot:        10 * n,
	}
}

func TestMemoryStore(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	store := NewMemoryStore(3)

	recent, err := store.Recent(ctx, 10)
	a.NoError(err)
	a.Empty(recent)

	for i := 1; i <= 4; i++ {
		a.NoError(store.Save(ctx, result(i)))
	}

	a.Equal(ErrDuplicateResult, store.Save(ctx, result(4)))

	recent, err = store.Recent(ctx, 10)
	a.NoError(err)
	if a.Len(recent, 3) {
		a.Equal(4, recent[0].GameNumber)
		a.Equal(3, recent[1].GameNumber)
		a.Equal(2, recent[2].GameNumber)
	}

	recent, err = store.Recent(ctx, 1)
	a.NoError(err)
	a.Len(recent, 1)

	// the evicted result can be saved again
	a.NoError(store.Save(ctx, result(1)))
}

func Test_clampRows(t *testing.T) {
	assert.Equal(t, MaxRows, clampRows(0))
	assert.Equal(t, MaxRows, clampRows(-1))
	assert.Equal(t, MaxRows, clampRows(MaxRows+1))
	assert.Equal(t, 5, clampRows(5))
}
