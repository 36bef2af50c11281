package game

import (
	"math/rand"

	"tabletalk/internal/models"
)

// BuildDeck returns a uniformly random permutation of cards using a
// Fisher-Yates shuffle. The input slice is never mutated. Draws consume the
// returned deck from the end, one card at a time, without replacement.
func BuildDeck(cards []models.Card, rng *rand.Rand) []models.Card {
	deck := make([]models.Card, len(cards))
	copy(deck, cards)

	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	return deck
}
