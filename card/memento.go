package card

import (
	"fmt"

	"github.com/unoline/uno/card/color"
)

// Memento type tags. Wire-compatible with the historical snapshot
// format, hence DRAW for draw-two and the space in WILD DRAW.
const (
	TypeNumbered     = "NUMBERED"
	TypeSkip         = "SKIP"
	TypeReverse      = "REVERSE"
	TypeDrawTwo      = "DRAW"
	TypeWild         = "WILD"
	TypeWildDrawFour = "WILD DRAW"
)

// Memento is the plain-data form of a card. Color is empty for wilds
// and Number is set only for numbered cards.
type Memento struct {
	Type   string      `json:"type"`
	Color  color.Color `json:"color,omitempty"`
	Number *int        `json:"number,omitempty"`
}

func (c Numbered) Memento() Memento {
	number := c.number
	return Memento{Type: TypeNumbered, Color: c.color, Number: &number}
}

func (c Skip) Memento() Memento {
	return Memento{Type: TypeSkip, Color: c.color}
}

func (c Reverse) Memento() Memento {
	return Memento{Type: TypeReverse, Color: c.color}
}

func (c DrawTwo) Memento() Memento {
	return Memento{Type: TypeDrawTwo, Color: c.color}
}

func (Wild) Memento() Memento {
	return Memento{Type: TypeWild}
}

func (WildDrawFour) Memento() Memento {
	return Memento{Type: TypeWildDrawFour}
}

// FromMemento rebuilds a card from its plain-data form, rejecting
// unknown types, missing colors on colored kinds and numbers outside
// 0..9.
func FromMemento(m Memento) (Card, error) {
	switch m.Type {
	case TypeNumbered:
		if !m.Color.Valid() {
			return nil, fmt.Errorf("missing color for %s card", m.Type)
		}
		if m.Number == nil {
			return nil, fmt.Errorf("missing number for %s card", m.Type)
		}
		if *m.Number < 0 || *m.Number > 9 {
			return nil, fmt.Errorf("illegal number %d", *m.Number)
		}
		return NewNumbered(m.Color, *m.Number), nil
	case TypeSkip:
		if !m.Color.Valid() {
			return nil, fmt.Errorf("missing color for %s card", m.Type)
		}
		return NewSkip(m.Color), nil
	case TypeReverse:
		if !m.Color.Valid() {
			return nil, fmt.Errorf("missing color for %s card", m.Type)
		}
		return NewReverse(m.Color), nil
	case TypeDrawTwo:
		if !m.Color.Valid() {
			return nil, fmt.Errorf("missing color for %s card", m.Type)
		}
		return NewDrawTwo(m.Color), nil
	case TypeWild:
		return NewWild(), nil
	case TypeWildDrawFour:
		return NewWildDrawFour(), nil
	}
	return nil, fmt.Errorf("unknown card type '%s'", m.Type)
}
