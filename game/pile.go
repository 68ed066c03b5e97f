package game

import (
	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
)

// DiscardPile keeps played cards oldest-first and tracks the active
// color separately, since a wild on top carries no color of its own.
type DiscardPile struct {
	cards       []card.Card
	activeColor color.Color
}

func NewDiscardPile() *DiscardPile {
	return &DiscardPile{cards: make([]card.Card, 0, FullDeckSize/2)}
}

func (p *DiscardPile) Size() int {
	return len(p.cards)
}

// Top returns the most recently played card.
func (p *DiscardPile) Top() (card.Card, bool) {
	if len(p.cards) == 0 {
		return nil, false
	}
	return p.cards[len(p.cards)-1], true
}

// Add puts c on top. A non-None chosen becomes the active color (the
// wild case); otherwise the card's own color, if any, becomes active.
func (p *DiscardPile) Add(c card.Card, chosen color.Color) {
	p.cards = append(p.cards, c)
	switch {
	case chosen != color.None:
		p.activeColor = chosen
	case c.Color() != color.None:
		p.activeColor = c.Color()
	}
}

// ActiveColor is the color plays are judged against.
func (p *DiscardPile) ActiveColor() color.Color {
	return p.activeColor
}

// ToMemento exports the pile oldest-first.
func (p *DiscardPile) ToMemento() []card.Memento {
	mementos := make([]card.Memento, len(p.cards))
	for i, c := range p.cards {
		mementos[i] = c.Memento()
	}
	return mementos
}

// takeBelowTop removes and returns every card except the top one,
// leaving the top and the active color in place. A pile of size <= 1
// yields nothing.
func (p *DiscardPile) takeBelowTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	below := make([]card.Card, len(p.cards)-1)
	copy(below, p.cards[:len(p.cards)-1])
	p.cards[0] = p.cards[len(p.cards)-1]
	p.cards = p.cards[:1]
	return below
}
