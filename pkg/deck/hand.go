package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Replace swaps the card at index i for the supplied card and returns the
// card that was removed
func (h Hand) Replace(i int, card *Card) *Card {
	old := h[i]
	h[i] = card
	return old
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
// Cards are immutable once dealt, so only the ordering is copied. Reordering
// the clone never affects the original.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}

	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
