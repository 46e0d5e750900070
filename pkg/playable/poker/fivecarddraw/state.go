package fivecarddraw

import (
	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/poker"
)

// response keys
const (
	keyGame      = "game"
	keyLog       = "log"
	keyReveal    = "reveal"
	keyGameEnded = "gameEnded"
)

// gameKey identifies the game in every game response
const gameKey = "five-card-draw"

// GameStateView is the state of the session as seen by one player
type GameStateView struct {
	PlayerID   int        `json:"playerId"`
	Hand       deck.Hand  `json:"hand"`
	Status     ViewStatus `json:"status"`
	Money      [2]int     `json:"money"`
	Pot        int        `json:"pot"`
	Dealer     int        `json:"dealer"`
	GameNumber int        `json:"gameNumber"`

	// AmountNeededToSee is only set while a bet is waiting to be matched
	AmountNeededToSee *int `json:"amountNeededToSee,omitempty"`
}

// RevealedHand is a player's hand shown at the showdown
type RevealedHand struct {
	PlayerID int             `json:"playerId"`
	Hand     deck.Hand       `json:"hand"`
	Rank     *poker.HandRank `json:"rank"`
}

// Showdown is sent to both players when the hands are compared
type Showdown struct {
	Hands  []*RevealedHand `json:"hands"`
	Winner int             `json:"winner"`
	Tied   bool            `json:"tied"`
	Pot    int             `json:"pot"`
}

func (h *Hub) viewFor(playerID int) *GameStateView {
	view := &GameStateView{
		PlayerID:   playerID,
		Hand:       h.participant(playerID).snapshot(),
		Money:      h.money(),
		Pot:        h.pot,
		Dealer:     h.dealer,
		GameNumber: h.gameNumber,
	}

	if h.closed {
		view.Status = ViewGameOver
	} else {
		view.Status = viewStatusFor(h.status, playerID == h.currentPlayer)
	}

	if h.status == awaitingBetOrSee {
		amount := h.amountNeededToSee
		view.AmountNeededToSee = &amount
	}

	return view
}

// GetPlayerState returns the current state of the game for the player
func (h *Hub) GetPlayerState(playerID int) (*playable.Response, error) {
	if !h.started {
		return nil, ErrNotStarted
	}

	if !isValidPlayerID(playerID) {
		return nil, ErrUnknownPlayer
	}

	return &playable.Response{
		Key:   keyGame,
		Value: gameKey,
		Data:  h.viewFor(playerID),
	}, nil
}

func (h *Hub) money() [2]int {
	return [2]int{h.participants[0].Money, h.participants[1].Money}
}
