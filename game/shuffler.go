package game

import (
	"math/rand"

	"github.com/unoline/uno/card"
)

// Shuffler permutes cards in place. The engine never provides its own
// randomness; every shuffle goes through the injected function.
type Shuffler func(cards []card.Card)

// Randomizer returns an integer in [0, n). Used once per match to
// pick the first dealer.
type Randomizer func(n int) int

// StandardShuffler is a uniform random permutation.
func StandardShuffler(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// StandardRandomizer draws from the global source.
func StandardRandomizer(n int) int {
	return rand.Intn(n)
}

// IdentityShuffler leaves the cards untouched. Tests inject it to
// play from a known deck order.
func IdentityShuffler([]card.Card) {}
