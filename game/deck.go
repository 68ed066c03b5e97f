package game

import (
	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
)

// FullDeckSize is the card count of a standard UNO deck.
const FullDeckSize = 108

// Deck is an ordered pile dealt from the front. A deck owns its cards
// exclusively; cards move between decks by value, never by shared
// reference.
type Deck struct {
	cards []card.Card
}

// NewDeck copies cards into a fresh deck.
func NewDeck(cards []card.Card) *Deck {
	owned := make([]card.Card, len(cards))
	copy(owned, cards)
	return &Deck{cards: owned}
}

// NewFullDeck builds the 108-card deck in canonical order: per color
// one 0, two each of 1-9, two skips, two reverses, two draw-twos,
// then four wilds and four wild-draw-fours.
func NewFullDeck() *Deck {
	cards := make([]card.Card, 0, FullDeckSize)
	for _, col := range color.All {
		cards = append(cards, colorCards(col)...)
	}
	cards = append(cards, wildCards()...)
	return &Deck{cards: cards}
}

func colorCards(col color.Color) []card.Card {
	cards := make([]card.Card, 0, 25)
	cards = append(cards, card.NewNumbered(col, 0))
	for number := 1; number <= 9; number++ {
		numbered := card.NewNumbered(col, number)
		cards = append(cards, numbered, numbered)
	}
	skip := card.NewSkip(col)
	reverse := card.NewReverse(col)
	drawTwo := card.NewDrawTwo(col)
	cards = append(cards, skip, skip, reverse, reverse, drawTwo, drawTwo)
	return cards
}

func wildCards() []card.Card {
	wild := card.NewWild()
	wildDrawFour := card.NewWildDrawFour()
	return []card.Card{
		wild, wild, wild, wild,
		wildDrawFour, wildDrawFour, wildDrawFour, wildDrawFour,
	}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// Deal removes and returns the front card.
func (d *Deck) Deal() (card.Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	front := d.cards[0]
	d.cards = d.cards[1:]
	return front, true
}

// Add puts c at the back of the deck.
func (d *Deck) Add(c card.Card) {
	d.cards = append(d.cards, c)
}

// Shuffle hands the live backing sequence to shuffle, which must
// permute it in place.
func (d *Deck) Shuffle(shuffle Shuffler) {
	shuffle(d.cards)
}

// Filter returns a new deck holding the matching cards, leaving d
// untouched.
func (d *Deck) Filter(pred func(card.Card) bool) *Deck {
	matching := make([]card.Card, 0, len(d.cards))
	for _, c := range d.cards {
		if pred(c) {
			matching = append(matching, c)
		}
	}
	return &Deck{cards: matching}
}

// Cards returns a copy of the deck in deal order.
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// ToMemento exports the deck in deal order.
func (d *Deck) ToMemento() []card.Memento {
	mementos := make([]card.Memento, len(d.cards))
	for i, c := range d.cards {
		mementos[i] = c.Memento()
	}
	return mementos
}

// DeckFromMemento rebuilds a deck, validating every record.
func DeckFromMemento(mementos []card.Memento) (*Deck, error) {
	cards, err := cardsFromMementos(mementos)
	if err != nil {
		return nil, err
	}
	return &Deck{cards: cards}, nil
}

func cardsFromMementos(mementos []card.Memento) ([]card.Card, error) {
	cards := make([]card.Card, len(mementos))
	for i, m := range mementos {
		c, err := card.FromMemento(m)
		if err != nil {
			return nil, restoreError("card %d: %v", i, err)
		}
		cards[i] = c
	}
	return cards, nil
}
