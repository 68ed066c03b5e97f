package game

import (
	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
)

// Matches reports whether candidate may be played on top under the
// given active color. The wild-draw-four restriction is not decided
// here: it needs the whole hand, so Round.CanPlay checks it.
func Matches(candidate card.Card, top card.Card, active color.Color) bool {
	switch c := candidate.(type) {
	case card.Wild:
		return true
	case card.WildDrawFour:
		return true
	case card.Numbered:
		if active != color.None && c.Color() == active {
			return true
		}
		topNumbered, ok := top.(card.Numbered)
		return ok && (c.Number() == topNumbered.Number() || c.Color() == topNumbered.Color())
	case card.Skip:
		if active != color.None && c.Color() == active {
			return true
		}
		if _, ok := top.(card.Skip); ok {
			return true
		}
		return c.Color() == top.Color()
	case card.Reverse:
		if active != color.None && c.Color() == active {
			return true
		}
		if _, ok := top.(card.Reverse); ok {
			return true
		}
		return c.Color() == top.Color()
	case card.DrawTwo:
		if active != color.None && c.Color() == active {
			return true
		}
		if _, ok := top.(card.DrawTwo); ok {
			return true
		}
		return c.Color() == top.Color()
	}
	return false
}
