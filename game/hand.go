package game

import (
	"github.com/unoline/uno/card"
)

// Hand is one player's ordered cards. Order is part of the contract:
// plays address cards by index, so removal shifts instead of
// swapping.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, DefaultCardsPerPlayer)}
}

func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

// Card returns the card at index without removing it.
func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return nil, false
	}
	return h.cards[index], true
}

// RemoveAt takes the card at index out of the hand, preserving the
// order of the rest.
func (h *Hand) RemoveAt(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, ErrCardOutOfBounds
	}
	removed := h.cards[index]
	copy(h.cards[index:], h.cards[index+1:])
	h.cards = h.cards[:len(h.cards)-1]
	return removed, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Score sums the point values of the remaining cards.
func (h *Hand) Score() int {
	score := 0
	for _, c := range h.cards {
		score += c.Score()
	}
	return score
}

// Cards returns a copy in hand order.
func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// ToMemento exports the hand in order.
func (h *Hand) ToMemento() []card.Memento {
	mementos := make([]card.Memento, len(h.cards))
	for i, c := range h.cards {
		mementos[i] = c.Memento()
	}
	return mementos
}
