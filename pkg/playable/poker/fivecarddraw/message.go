package fivecarddraw

import (
	"fmt"

	"drawpoker-server/pkg/playable"
)

// Message is an inbound player message. It is one of Deal, Fold, Bet or Discard.
type Message interface {
	isMessage()
	fmt.Stringer
}

// Deal shuffles and deals a new hand
type Deal struct{}

// Fold concedes the pot to the opponent
type Fold struct{}

// Bet puts Amount into the pot. A bet equal to the amount needed to see ends
// the betting round, a larger bet is a raise. A first bet of zero is a pass.
type Bet struct {
	Amount int
}

// Discard replaces the cards at the given hand positions
type Discard struct {
	Indices []int
}

func (Deal) isMessage()    {}
func (Fold) isMessage()    {}
func (Bet) isMessage()     {}
func (Discard) isMessage() {}

func (Deal) String() string {
	return "deal"
}

func (Fold) String() string {
	return "fold"
}

func (b Bet) String() string {
	return fmt.Sprintf("bet %d", b.Amount)
}

func (d Discard) String() string {
	return fmt.Sprintf("discard %v", d.Indices)
}

// wire action names
const (
	actionDeal    = "deal"
	actionFold    = "fold"
	actionBet     = "bet"
	actionDiscard = "discard"
)

// ParseMessage converts a client payload into a Message
func ParseMessage(payload *playable.PayloadIn) (Message, error) {
	switch payload.Action {
	case actionDeal:
		return Deal{}, nil
	case actionFold:
		return Fold{}, nil
	case actionBet:
		amount, ok := payload.AdditionalData.GetInt("amount")
		if !ok {
			return nil, fmt.Errorf("%w: bet requires a whole-number amount", ErrInvalidAction)
		}

		return Bet{Amount: amount}, nil
	case actionDiscard:
		if _, present := payload.AdditionalData["indices"]; !present {
			return Discard{Indices: []int{}}, nil
		}

		indices, ok := payload.AdditionalData.GetIntSlice("indices")
		if !ok {
			return nil, fmt.Errorf("%w: indices must be a list of card positions", ErrInvalidAction)
		}

		return Discard{Indices: indices}, nil
	}

	return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, payload.Action)
}
