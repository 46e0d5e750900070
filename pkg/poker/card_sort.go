package poker

import "drawpoker-server/pkg/deck"

// suitOrder only breaks ties between equal ranks so that sorting is
// deterministic. It never affects the strength of a hand.
var suitOrder = map[deck.Suit]int{
	deck.Clubs:    0,
	deck.Diamonds: 1,
	deck.Hearts:   2,
	deck.Spades:   3,
}

// byRankDescending sorts high cards first
type byRankDescending []*deck.Card

func (s byRankDescending) Len() int {
	return len(s)
}

func (s byRankDescending) Less(i, j int) bool {
	if s[i].Rank != s[j].Rank {
		return s[i].Rank > s[j].Rank
	}

	return suitOrder[s[i].Suit] > suitOrder[s[j].Suit]
}

func (s byRankDescending) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
