package poker

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"drawpoker-server/pkg/deck"
)

// HandSize is the largest hand Evaluate accepts
const HandSize = 5

// ErrTooManyCards is returned when a hand has more than HandSize cards
var ErrTooManyCards = errors.New("a hand cannot contain more than five cards")

// ErrInvalidCard is returned for a missing card, a joker, or a card that is not part of a standard deck
var ErrInvalidCard = errors.New("invalid card")

// Rank is the comparable strength of a hand. A higher rank is a better hand.
//
// Bits 20-23 hold the category. The five 4-bit nibbles below it hold the
// card values, most significant card first.
type Rank int

const categoryShift = 20

// Category returns the category encoded in the rank
func (r Rank) Category() Category {
	return Category((int(r) >> categoryShift) & 0xf)
}

// HandRank is the result of evaluating a hand
type HandRank struct {
	Rank     Rank     `json:"rank"`
	Category Category `json:"category"`
	Short    string   `json:"short"`
	Long     string   `json:"long"`
}

// Compare returns 1 if h beats other, -1 if other beats h, and 0 on a tie
func (h *HandRank) Compare(other *HandRank) int {
	switch {
	case h.Rank > other.Rank:
		return 1
	case h.Rank < other.Rank:
		return -1
	}

	return 0
}

func (h *HandRank) String() string {
	return h.Long
}

// group is a run of cards that share a rank
type group struct {
	rank  int
	cards []*deck.Card
}

// Evaluate ranks a hand of zero to five cards.
//
// The hand is reordered in place: the cards that decide the category come
// first, followed by the kickers in descending order. In a wheel
// (A-5-4-3-2) the ace is moved to the end. Callers that need to keep the
// original order must pass a clone.
func Evaluate(hand deck.Hand) (*HandRank, error) {
	if len(hand) > HandSize {
		return nil, ErrTooManyCards
	}

	for i, card := range hand {
		if card == nil {
			return nil, fmt.Errorf("%w: card %d is missing", ErrInvalidCard, i)
		}

		if !card.IsStandard() {
			return nil, fmt.Errorf("%w: card %d (%s)", ErrInvalidCard, i, deck.CardToString(card))
		}
	}

	sort.Sort(byRankDescending(hand))

	groups := groupByRank(hand)
	flush := isFlush(hand)
	straight := len(groups) == HandSize && isStraight(hand)

	var category Category
	switch {
	case straight && flush:
		if hand[0].Rank == deck.Ace {
			category = RoyalFlush
		} else {
			category = StraightFlush
		}
	case flush:
		category = Flush
	case straight:
		category = Straight
	default:
		category = categoryFromGroups(hand, groups)
	}

	return &HandRank{
		Rank:     encode(category, hand),
		Category: category,
		Short:    category.String(),
		Long:     describe(category, hand),
	}, nil
}

// MustEvaluate is like Evaluate, but panics on an invalid hand
func MustEvaluate(hand deck.Hand) *HandRank {
	hr, err := Evaluate(hand)
	if err != nil {
		panic(err)
	}

	return hr
}

func isFlush(hand deck.Hand) bool {
	if len(hand) != HandSize {
		return false
	}

	for _, card := range hand[1:] {
		if card.Suit != hand[0].Suit {
			return false
		}
	}

	return true
}

// isStraight expects five distinct ranks sorted high to low
// A wheel is rotated so the ace is last
func isStraight(hand deck.Hand) bool {
	if hand[0].Rank-hand[HandSize-1].Rank == HandSize-1 {
		return true
	}

	if hand[0].Rank == deck.Ace && hand[1].Rank == 5 && hand[HandSize-1].Rank == 2 {
		ace := hand[0]
		copy(hand, hand[1:])
		hand[HandSize-1] = ace
		return true
	}

	return false
}

// groupByRank expects the hand sorted high to low
func groupByRank(hand deck.Hand) []*group {
	groups := make([]*group, 0, len(hand))
	for _, card := range hand {
		if n := len(groups); n > 0 && groups[n-1].rank == card.Rank {
			groups[n-1].cards = append(groups[n-1].cards, card)
			continue
		}

		groups = append(groups, &group{rank: card.Rank, cards: []*deck.Card{card}})
	}

	return groups
}

// categoryFromGroups rearranges the hand so larger groups come first, ties
// broken by rank, and returns the matching category
func categoryFromGroups(hand deck.Hand, groups []*group) Category {
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].cards) > len(groups[j].cards)
	})

	i := 0
	for _, g := range groups {
		i += copy(hand[i:], g.cards)
	}

	if len(groups) == 0 {
		return HighCard
	}

	switch len(groups[0].cards) {
	case 4:
		return FourOfAKind
	case 3:
		if len(groups) > 1 && len(groups[1].cards) == 2 {
			return FullHouse
		}

		return ThreeOfAKind
	case 2:
		if len(groups) > 1 && len(groups[1].cards) == 2 {
			return TwoPair
		}

		return OnePair
	}

	return HighCard
}

func encode(category Category, hand deck.Hand) Rank {
	r := int(category) << categoryShift
	shift := 16
	for _, card := range hand {
		r |= card.Rank << shift
		shift -= 4
	}

	return Rank(r)
}

func describe(category Category, hand deck.Hand) string {
	if len(hand) == 0 {
		return "No cards"
	}

	high := hand[0].Rank
	switch category {
	case RoyalFlush:
		return fmt.Sprintf("Royal flush in %s", hand[0].Suit)
	case StraightFlush:
		return fmt.Sprintf("Straight flush, %s high", deck.RankName(high))
	case Flush:
		return fmt.Sprintf("Flush, %s", rankList(hand))
	case Straight:
		return fmt.Sprintf("Straight, %s high", deck.RankName(high))
	case FourOfAKind:
		return withKickers(fmt.Sprintf("Four %s", deck.RankNamePlural(high)), hand[4:])
	case FullHouse:
		return fmt.Sprintf("Full house, %s over %s", deck.RankNamePlural(high), deck.RankNamePlural(hand[3].Rank))
	case ThreeOfAKind:
		return withKickers(fmt.Sprintf("Three %s", deck.RankNamePlural(high)), hand[3:])
	case TwoPair:
		return withKickers(fmt.Sprintf("Two pair, %s and %s", deck.RankNamePlural(high), deck.RankNamePlural(hand[2].Rank)), hand[4:])
	case OnePair:
		return withKickers(fmt.Sprintf("Pair of %s", deck.RankNamePlural(high)), hand[2:])
	}

	return withKickers(fmt.Sprintf("High card %s", deck.RankName(high)), hand[1:])
}

func withKickers(prefix string, kickers deck.Hand) string {
	switch len(kickers) {
	case 0:
		return prefix
	case 1:
		return fmt.Sprintf("%s, kicker %s", prefix, rankList(kickers))
	}

	return fmt.Sprintf("%s, kickers %s", prefix, rankList(kickers))
}

func rankList(cards deck.Hand) string {
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = deck.RankName(card.Rank)
	}

	return strings.Join(names, ", ")
}
