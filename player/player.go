// Package player holds the out-of-core collaborators that drive a
// Round: decision-makers observe engine state through a primitive
// snapshot and answer with decisions the driver applies one at a
// time.
package player

import (
	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
	"github.com/unoline/uno/game"
)

// Action is one of the four ways a seat can act on a round.
type Action int

const (
	ActionPlay Action = iota
	ActionDraw
	ActionSayUno
	ActionCatchUno
)

// Decision is one engine call the driver should make on the actor's
// behalf. Color is set only for a wild play; Accused only for an
// accusation.
type Decision struct {
	Action    Action
	CardIndex int
	Color     color.Color
	Accused   int
}

// LastTurn describes the most recently completed turn, as seen by an
// observer deciding whether to accuse.
type LastTurn struct {
	Player   int
	HandSize int
	SaidUno  bool
}

// Snapshot reduces a round to the primitives one seat may see: its
// own hand, which of those indices are currently legal, and the
// public table state.
type Snapshot struct {
	Me          int
	Hand        []card.Memento
	Playable    []int
	Top         card.Memento
	ActiveColor color.Color
	Players     []string
	HandSizes   []int
	LastTurn    *LastTurn
}

// Player decides how a seat acts when its turn comes around.
type Player interface {
	Name() string
	// Decide returns the engine calls to make, in order. The driver
	// applies them one at a time against the live round.
	Decide(snapshot Snapshot) []Decision
}

// TakeSnapshot shapes the view for one seat from the round's read
// API. Playable stays empty while it is not the seat's turn.
func TakeSnapshot(round *game.Round, seat int, lastTurn *LastTurn) Snapshot {
	hand := round.PlayerHand(seat)
	snapshot := Snapshot{
		Me:          seat,
		Hand:        make([]card.Memento, len(hand)),
		ActiveColor: round.ActiveColor(),
		HandSizes:   make([]int, round.PlayerCount()),
		LastTurn:    lastTurn,
	}
	for i, c := range hand {
		snapshot.Hand[i] = c.Memento()
	}
	if top, ok := round.TopOfDiscard(); ok {
		snapshot.Top = top.Memento()
	}
	for i := 0; i < round.PlayerCount(); i++ {
		name, _ := round.Player(i)
		snapshot.Players = append(snapshot.Players, name)
		snapshot.HandSizes[i] = len(round.PlayerHand(i))
	}
	if inTurn, ok := round.PlayerInTurn(); ok && inTurn == seat {
		for i := range hand {
			if round.CanPlay(i) {
				snapshot.Playable = append(snapshot.Playable, i)
			}
		}
	}
	return snapshot
}
