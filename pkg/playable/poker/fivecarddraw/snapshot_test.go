package fivecarddraw

import (
	"testing"

	"drawpoker-server/pkg/snapshot"
)

func TestHub_ViewSnapshot(t *testing.T) {
	f := newStartedHub(t)
	f.deck.stackDeal(1, "2c,3c,4c,5c,7d", "8h,9h,10h,11h,13s")

	f.send(t, 1, Deal{})
	snapshot.ValidateSnapshot(t, f.transport.lastView(1), 0)

	f.send(t, 2, Bet{Amount: 10})
	snapshot.ValidateSnapshot(t, f.transport.lastView(1), 0)
}
