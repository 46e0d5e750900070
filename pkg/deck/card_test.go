package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♢", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "K♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())

	card = Card{Suit: Joker}
	assert.Equal(t, "Jkr", card.String())
}

func TestCard_IsStandard(t *testing.T) {
	assert.True(t, CardFromString("2c").IsStandard())
	assert.True(t, CardFromString("14s").IsStandard())
	assert.False(t, CardFromString("jkr").IsStandard())
	assert.False(t, (&Card{Rank: 1, Suit: Hearts}).IsStandard())
	assert.False(t, (&Card{Rank: 15, Suit: Hearts}).IsStandard())
	assert.False(t, (&Card{Rank: 5, Suit: "stars"}).IsStandard())
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("14c,10d,jkr")
	assert.Equal(t, &Card{Rank: 14, Suit: Clubs}, cards[0])
	assert.Equal(t, &Card{Rank: 10, Suit: Diamonds}, cards[1])
	assert.Equal(t, &Card{Suit: Joker}, cards[2])
	assert.Equal(t, "14c,10d,jkr", CardsToString(cards))

	assert.Empty(t, CardsFromString(""))
	assert.Panics(t, func() { CardFromString("1x") })
}

func TestRankName(t *testing.T) {
	assert.Equal(t, "Ace", RankName(Ace))
	assert.Equal(t, "King", RankName(King))
	assert.Equal(t, "Seven", RankName(7))
	assert.Equal(t, "99", RankName(99))
	assert.Equal(t, "Sixes", RankNamePlural(6))
	assert.Equal(t, "Jacks", RankNamePlural(Jack))
}
