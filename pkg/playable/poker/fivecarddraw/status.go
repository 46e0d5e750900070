package fivecarddraw

import (
	"encoding/json"
	"fmt"
)

// status is the internal phase of the session
type status int

const (
	awaitingDeal status = iota
	awaitingFirstBet
	awaitingBetOrSee
	awaitingFirstDraw
	awaitingSecondDraw
)

func (s status) String() string {
	switch s {
	case awaitingDeal:
		return "awaitingDeal"
	case awaitingFirstBet:
		return "awaitingFirstBet"
	case awaitingBetOrSee:
		return "awaitingBetOrSee"
	case awaitingFirstDraw:
		return "awaitingFirstDraw"
	case awaitingSecondDraw:
		return "awaitingSecondDraw"
	}

	panic(fmt.Sprintf("unknown status: %d", s))
}

// ViewStatus is the status a player sees. It tells the player whether they
// are expected to act or to wait for their opponent.
type ViewStatus int

// ViewStatus constants
const (
	ViewDeal ViewStatus = iota
	ViewWaitForDeal
	ViewBet
	ViewWaitForBet
	ViewBetOrSee
	ViewWaitForBetOrSee
	ViewDraw
	ViewWaitForDraw
	ViewGameOver
)

var viewStatusNames = map[ViewStatus]string{
	ViewDeal:            "deal",
	ViewWaitForDeal:     "waitForDeal",
	ViewBet:             "bet",
	ViewWaitForBet:      "waitForBet",
	ViewBetOrSee:        "betOrSee",
	ViewWaitForBetOrSee: "waitForBetOrSee",
	ViewDraw:            "draw",
	ViewWaitForDraw:     "waitForDraw",
	ViewGameOver:        "gameOver",
}

func (v ViewStatus) String() string {
	if name, ok := viewStatusNames[v]; ok {
		return name
	}

	panic(fmt.Sprintf("unknown view status: %d", v))
}

// MarshalJSON encodes the status as its name
func (v ViewStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes the status from its name
func (v *ViewStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	for status, name := range viewStatusNames {
		if name == s {
			*v = status
			return nil
		}
	}

	return fmt.Errorf("unknown view status: %s", s)
}

// viewStatusFor maps an internal status to what a player sees
func viewStatusFor(s status, isCurrentPlayer bool) ViewStatus {
	var active, passive ViewStatus
	switch s {
	case awaitingDeal:
		active, passive = ViewDeal, ViewWaitForDeal
	case awaitingFirstBet:
		active, passive = ViewBet, ViewWaitForBet
	case awaitingBetOrSee:
		active, passive = ViewBetOrSee, ViewWaitForBetOrSee
	case awaitingFirstDraw, awaitingSecondDraw:
		active, passive = ViewDraw, ViewWaitForDraw
	default:
		panic(fmt.Sprintf("unknown status: %d", s))
	}

	if isCurrentPlayer {
		return active
	}

	return passive
}
