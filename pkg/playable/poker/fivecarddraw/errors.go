package fivecarddraw

import (
	"errors"
	"fmt"
)

// ErrSessionClosed is returned for any event after a player disconnected
var ErrSessionClosed = errors.New("the session has ended")

// ErrSessionFull is returned when a third connection is attempted
var ErrSessionFull = errors.New("the session already has two players")

// ErrUnknownPlayer is returned when the player ID is not 1 or 2
var ErrUnknownPlayer = errors.New("unknown player")

// ErrAlreadyConnected is returned when the same player connects twice
var ErrAlreadyConnected = errors.New("player is already connected")

// ErrNotStarted is returned when a message arrives before both players are connected
var ErrNotStarted = errors.New("waiting for a second player")

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrInvalidAction is returned when the action is not allowed right now
var ErrInvalidAction = errors.New("invalid action")

// ErrBetTooSmall is returned when a bet is negative or does not cover the amount needed to see
var ErrBetTooSmall = errors.New("bet is too small")

// ErrInvalidDiscard is returned when the discard indices are out of range or repeated
var ErrInvalidDiscard = errors.New("invalid discard")

// ProtocolError is a rejected message. The state of the game is unchanged.
type ProtocolError struct {
	PlayerID int
	Err      error
}

func (p *ProtocolError) Error() string {
	return fmt.Sprintf("player %d: %v", p.PlayerID, p.Err)
}

// Unwrap returns the underlying error
func (p *ProtocolError) Unwrap() error {
	return p.Err
}

// IsProtocolError returns true if the error is a rejected message
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}
