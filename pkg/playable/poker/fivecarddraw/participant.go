package fivecarddraw

import "drawpoker-server/pkg/deck"

// participant is a seated player
type participant struct {
	PlayerID int
	Money    int
	Hand     deck.Hand
}

func newParticipant(playerID, stake int) *participant {
	return &participant{
		PlayerID: playerID,
		Money:    stake,
	}
}

// snapshot returns a copy of the hand that the caller can keep
func (p *participant) snapshot() deck.Hand {
	return p.Hand.Clone()
}
