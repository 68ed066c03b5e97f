package card

import (
	"fmt"

	"github.com/unoline/uno/card/color"
)

// Card is one of the six UNO card kinds: Numbered, Skip, Reverse,
// DrawTwo, Wild and WildDrawFour. The set is closed; a type switch
// over those six concrete types covers every card. Cards are
// immutable values and compare with ==.
type Card interface {
	// Color returns the card's own color, or color.None for wilds.
	Color() color.Color
	// Score is the card's point value when left in a losing hand.
	Score() int
	// Memento is the card's plain-data form.
	Memento() Memento
	fmt.Stringer

	sealed()
}

// Point values for non-numbered cards.
const (
	actionCardScore = 20
	wildCardScore   = 50
)

type Numbered struct {
	color  color.Color
	number int
}

func NewNumbered(c color.Color, number int) Numbered {
	return Numbered{color: c, number: number}
}

func (c Numbered) Color() color.Color { return c.color }

func (c Numbered) Number() int { return c.number }

func (c Numbered) Score() int { return c.number }

func (c Numbered) String() string {
	return c.color.Paintf("[%d]", c.number)
}

func (Numbered) sealed() {}

type Skip struct {
	color color.Color
}

func NewSkip(c color.Color) Skip {
	return Skip{color: c}
}

func (c Skip) Color() color.Color { return c.color }

func (c Skip) Score() int { return actionCardScore }

func (c Skip) String() string {
	return c.color.Paint("(/)")
}

func (Skip) sealed() {}

type Reverse struct {
	color color.Color
}

func NewReverse(c color.Color) Reverse {
	return Reverse{color: c}
}

func (c Reverse) Color() color.Color { return c.color }

func (c Reverse) Score() int { return actionCardScore }

func (c Reverse) String() string {
	return c.color.Paint("<=>")
}

func (Reverse) sealed() {}

type DrawTwo struct {
	color color.Color
}

func NewDrawTwo(c color.Color) DrawTwo {
	return DrawTwo{color: c}
}

func (c DrawTwo) Color() color.Color { return c.color }

func (c DrawTwo) Score() int { return actionCardScore }

func (c DrawTwo) String() string {
	return c.color.Paint("+2!")
}

func (DrawTwo) sealed() {}

type Wild struct{}

func NewWild() Wild {
	return Wild{}
}

func (Wild) Color() color.Color { return color.None }

func (Wild) Score() int { return wildCardScore }

func (Wild) String() string { return "(*)" }

func (Wild) sealed() {}

type WildDrawFour struct{}

func NewWildDrawFour() WildDrawFour {
	return WildDrawFour{}
}

func (WildDrawFour) Color() color.Color { return color.None }

func (WildDrawFour) Score() int { return wildCardScore }

func (WildDrawFour) String() string { return "+4!" }

func (WildDrawFour) sealed() {}

// IsWild reports whether c carries no color of its own and demands a
// chosen color when played.
func IsWild(c Card) bool {
	switch c.(type) {
	case Wild, WildDrawFour:
		return true
	case Numbered, Skip, Reverse, DrawTwo:
		return false
	}
	return false
}
