package game

import (
	"errors"
	"fmt"
)

// Configuration errors. Raised at construction; nothing is mutated.
var (
	ErrTooFewPlayers  = errors.New("at least 2 players are required")
	ErrTooManyPlayers = errors.New("at most 10 players are allowed")
	ErrTargetScore    = errors.New("target score must be greater than 0")
	ErrCardsPerPlayer = errors.New("cards per player must be positive")
)

// Illegal-action errors. Raised synchronously; the round is left
// unchanged.
var (
	ErrRoundFinished     = errors.New("round has ended")
	ErrIllegalPlay       = errors.New("illegal play")
	ErrWildColorRequired = errors.New("wild card requires a color")
	ErrColorOnNonWild    = errors.New("color can only be named on wild cards")
	ErrDrawPileExhausted = errors.New("no cards left to draw")
	ErrPlayerOutOfBounds = errors.New("player index out of bounds")
	ErrCardOutOfBounds   = errors.New("card index out of bounds")
)

// ErrInvalidMemento wraps every restoration failure.
var ErrInvalidMemento = errors.New("invalid memento")

func restoreError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidMemento, fmt.Sprintf(format, args...))
}
