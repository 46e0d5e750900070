package history

import (
	"context"
	"errors"

	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

// MaxRows is the most results Recent will return
const MaxRows = 100

// ErrDuplicateResult is returned when a result with the same ID or the same
// session and game number was already saved
var ErrDuplicateResult = errors.New("game result was already saved")

// Store is where completed games are kept
type Store interface {
	Save(ctx context.Context, result *fivecarddraw.GameResult) error
	// Recent returns up to rows results, most recently ended first
	Recent(ctx context.Context, rows int) ([]*fivecarddraw.GameResult, error)
}

func clampRows(rows int) int {
	if rows <= 0 || rows > MaxRows {
		return MaxRows
	}

	return rows
}
