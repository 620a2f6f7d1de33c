package models

// rankingDeck is the set of point values every participant starts a round with.
var rankingDeck = [...]int{12, 10, 8, 7, 6, 5, 4, 3, 2, 1}

// DeckSize is the number of votes a participant can cast in one round.
const DeckSize = len(rankingDeck)

// NewDeck returns a fresh copy of the ranking deck. Callers own the slice.
func NewDeck() []int {
	deck := make([]int, DeckSize)
	copy(deck, rankingDeck[:])
	return deck
}

// InDeck reports whether value is one of the ranking deck's point values.
func InDeck(value int) bool {
	for _, v := range rankingDeck {
		if v == value {
			return true
		}
	}
	return false
}
