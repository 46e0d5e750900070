package main

import (
	"fmt"

	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/fivecarddraw"
	"drawpoker-server/pkg/poker"
)

// raiseBy is how much the bot raises with a strong hand
const raiseBy = 20

// decide returns the bot's next message, or nil when it is the opponent's turn
func decide(view *fivecarddraw.GameStateView) (*playable.PayloadIn, error) {
	switch view.Status {
	case fivecarddraw.ViewDeal:
		return &playable.PayloadIn{Action: "deal"}, nil
	case fivecarddraw.ViewBet:
		hr, err := poker.Evaluate(view.Hand.Clone())
		if err != nil {
			return nil, err
		}

		return bet(openingBet(hr.Category)), nil
	case fivecarddraw.ViewBetOrSee:
		hr, err := poker.Evaluate(view.Hand.Clone())
		if err != nil {
			return nil, err
		}

		need := 0
		if view.AmountNeededToSee != nil {
			need = *view.AmountNeededToSee
		}

		switch {
		case hr.Category == poker.HighCard && need > raiseBy:
			return &playable.PayloadIn{Action: "fold"}, nil
		case hr.Category >= poker.ThreeOfAKind && need < raiseBy:
			return bet(need + raiseBy), nil
		}

		return bet(need), nil
	case fivecarddraw.ViewDraw:
		indices, err := discards(view.Hand)
		if err != nil {
			return nil, err
		}

		return &playable.PayloadIn{
			Action:         "discard",
			AdditionalData: playable.AdditionalData{"indices": indices},
		}, nil
	}

	return nil, nil
}

func openingBet(category poker.Category) int {
	switch {
	case category == poker.HighCard:
		return 0
	case category == poker.OnePair:
		return 10
	case category == poker.TwoPair:
		return 20
	}

	return 40
}

func bet(amount int) *playable.PayloadIn {
	return &playable.PayloadIn{
		Action:         "bet",
		AdditionalData: playable.AdditionalData{"amount": amount},
	}
}

// discards returns the positions of the cards that do not help the hand
// With nothing, the two highest cards are kept
func discards(hand deck.Hand) ([]int, error) {
	ranked := hand.Clone()
	hr, err := poker.Evaluate(ranked)
	if err != nil {
		return nil, err
	}

	var keep int
	switch hr.Category {
	case poker.HighCard, poker.OnePair:
		keep = 2
	case poker.ThreeOfAKind:
		keep = 3
	case poker.TwoPair, poker.FourOfAKind:
		keep = 4
	default:
		keep = len(ranked)
	}

	if keep > len(ranked) {
		return nil, fmt.Errorf("hand only has %d cards", len(ranked))
	}

	kept := make(map[*deck.Card]bool, keep)
	for _, card := range ranked[:keep] {
		kept[card] = true
	}

	indices := make([]int, 0, len(hand)-keep)
	for i, card := range hand {
		if !kept[card] {
			indices = append(indices, i)
		}
	}

	return indices, nil
}
