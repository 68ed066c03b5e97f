package game

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Direction labels used in round mementos.
const (
	DirectionClockwise        = "clockwise"
	DirectionCounterClockwise = "counterclockwise"
)

// RoundMemento is the plain snapshot of a Round. Hands follow seating
// order, the draw pile is in deal order and the discard pile is
// newest-first. PlayerInTurn is absent exactly when the round has
// finished.
type RoundMemento struct {
	Players          []string         `json:"players"`
	Hands            [][]card.Memento `json:"hands"`
	DrawPile         []card.Memento   `json:"drawPile"`
	DiscardPile      []card.Memento   `json:"discardPile"`
	CurrentColor     color.Color      `json:"currentColor,omitempty"`
	CurrentDirection string           `json:"currentDirection"`
	Dealer           int              `json:"dealer"`
	PlayerInTurn     *int             `json:"playerInTurn,omitempty"`
}

// GameMemento is the plain snapshot of a Game. CurrentRound is absent
// exactly when a winner exists.
type GameMemento struct {
	Players        []string      `json:"players"`
	TargetScore    int           `json:"targetScore"`
	Scores         []int         `json:"scores"`
	CardsPerPlayer int           `json:"cardsPerPlayer"`
	CurrentRound   *RoundMemento `json:"currentRound,omitempty"`
}

// EncodeMemento serializes a game memento to JSON.
func EncodeMemento(m GameMemento) ([]byte, error) {
	return json.Marshal(m)
}

// DecodeMemento parses a game memento from JSON. Structural
// consistency is not checked here; RestoreGame does that.
func DecodeMemento(data []byte) (GameMemento, error) {
	var m GameMemento
	if err := json.Unmarshal(data, &m); err != nil {
		return GameMemento{}, restoreError("%v", err)
	}
	return m, nil
}

// ToMemento snapshots the round.
func (r *Round) ToMemento() RoundMemento {
	players := make([]string, len(r.players))
	copy(players, r.players)

	hands := make([][]card.Memento, len(r.hands))
	for i, hand := range r.hands {
		hands[i] = hand.ToMemento()
	}

	oldestFirst := r.discard.ToMemento()
	newestFirst := make([]card.Memento, len(oldestFirst))
	for i, m := range oldestFirst {
		newestFirst[len(oldestFirst)-1-i] = m
	}

	direction := DirectionClockwise
	if !r.turn.Clockwise() {
		direction = DirectionCounterClockwise
	}

	m := RoundMemento{
		Players:          players,
		Hands:            hands,
		DrawPile:         r.drawPile.ToMemento(),
		DiscardPile:      newestFirst,
		CurrentColor:     r.discard.ActiveColor(),
		CurrentDirection: direction,
		Dealer:           r.dealer,
	}
	if !r.finished {
		inTurn := r.turn.Current()
		m.PlayerInTurn = &inTurn
	}
	return m
}

// RestoreRound validates a round memento and rebuilds the Round from
// the checked snapshot. Finished-ness and the score are derived from
// the hands, never trusted from the input.
func RestoreRound(m RoundMemento, shuffler Shuffler) (*Round, error) {
	seats := len(m.Players)
	if seats < MinPlayers {
		return nil, restoreError("need at least %d players", MinPlayers)
	}
	if seats > MaxPlayers {
		return nil, restoreError("at most %d players are allowed", MaxPlayers)
	}
	if len(m.Hands) != seats {
		return nil, restoreError("hand count does not match player count")
	}
	if len(m.DiscardPile) == 0 {
		return nil, restoreError("empty discard pile")
	}
	if m.Dealer < 0 || m.Dealer >= seats {
		return nil, restoreError("dealer out of bounds")
	}
	if m.PlayerInTurn != nil && (*m.PlayerInTurn < 0 || *m.PlayerInTurn >= seats) {
		return nil, restoreError("player in turn out of bounds")
	}
	if m.CurrentColor != color.None && !m.CurrentColor.Valid() {
		return nil, restoreError("invalid current color '%s'", m.CurrentColor)
	}

	var direction int
	switch m.CurrentDirection {
	case DirectionClockwise:
		direction = clockwise
	case DirectionCounterClockwise:
		direction = counterClockwise
	default:
		return nil, restoreError("invalid direction '%s'", m.CurrentDirection)
	}

	hands := make([]*Hand, seats)
	emptyHands := 0
	winner := 0
	for i, handMemento := range m.Hands {
		cards, err := cardsFromMementos(handMemento)
		if err != nil {
			return nil, err
		}
		hands[i] = &Hand{cards: cards}
		if len(cards) == 0 {
			emptyHands++
			winner = i
		}
	}
	if emptyHands > 1 {
		return nil, restoreError("multiple empty hands")
	}
	finished := emptyHands == 1
	if !finished && m.PlayerInTurn == nil {
		return nil, restoreError("player in turn required for an unfinished round")
	}

	drawCards, err := cardsFromMementos(m.DrawPile)
	if err != nil {
		return nil, err
	}
	newestFirst, err := cardsFromMementos(m.DiscardPile)
	if err != nil {
		return nil, err
	}

	top := newestFirst[0]
	if top.Color() != color.None {
		if m.CurrentColor != color.None && m.CurrentColor != top.Color() {
			return nil, restoreError("current color does not match the top card")
		}
	} else if m.CurrentColor == color.None {
		return nil, restoreError("a wild top card requires a current color")
	}

	discard := NewDiscardPile()
	for i := len(newestFirst) - 1; i >= 0; i-- {
		discard.Add(newestFirst[i], color.None)
	}
	if m.CurrentColor != color.None {
		discard.activeColor = m.CurrentColor
	}

	players := make([]string, seats)
	copy(players, m.Players)
	if shuffler == nil {
		shuffler = StandardShuffler
	}

	r := &Round{
		players:  players,
		dealer:   m.Dealer,
		hands:    hands,
		turn:     NewCycler(seats),
		drawPile: &Deck{cards: drawCards},
		discard:  discard,
		shuffler: shuffler,
	}
	if direction == counterClockwise {
		r.turn.Reverse()
	}
	if m.PlayerInTurn != nil {
		r.turn.Seek(*m.PlayerInTurn)
	}
	if finished {
		r.finished = true
		r.winner = winner
		for _, hand := range r.hands {
			r.finalScore += hand.Score()
		}
	}
	return r, nil
}

// ToMemento snapshots the game.
func (g *Game) ToMemento() GameMemento {
	players := make([]string, len(g.players))
	copy(players, g.players)
	scores := make([]int, len(g.scores))
	copy(scores, g.scores)

	m := GameMemento{
		Players:        players,
		TargetScore:    g.targetScore,
		Scores:         scores,
		CardsPerPlayer: g.cardsPerPlayer,
	}
	if g.currentRound != nil {
		round := g.currentRound.ToMemento()
		m.CurrentRound = &round
	}
	return m
}

// RestoreGame rebuilds a Game from a memento. A memento whose scores
// already show a winner must carry no current round; an unfinished
// one must carry exactly one.
func RestoreGame(m GameMemento, randomizer Randomizer, shuffler Shuffler) (*Game, error) {
	players, err := normalizePlayers(m.Players)
	if err != nil {
		return nil, restoreError("%v", err)
	}
	if m.TargetScore <= 0 {
		return nil, restoreError("%v", ErrTargetScore)
	}
	if m.CardsPerPlayer <= 0 {
		return nil, restoreError("%v", ErrCardsPerPlayer)
	}
	if len(m.Scores) != len(players) {
		return nil, restoreError("scores must contain one entry per player")
	}
	scores := make([]int, len(m.Scores))
	for i, score := range m.Scores {
		if score < 0 {
			return nil, restoreError("scores cannot be negative")
		}
		scores[i] = score
	}

	winner := -1
	for i, score := range scores {
		if score >= m.TargetScore {
			if winner != -1 {
				return nil, restoreError("multiple winners")
			}
			winner = i
		}
	}

	if shuffler == nil {
		shuffler = StandardShuffler
	}
	_ = randomizer // the restored dealer never comes from randomness

	g := newGameShell(players, m.TargetScore, m.CardsPerPlayer, shuffler)
	g.scores = scores

	if winner >= 0 {
		if m.CurrentRound != nil {
			return nil, restoreError("a finished game must not contain a current round")
		}
		g.winner = &winner
		g.dealer = mod(winner+1, len(players))
		return g, nil
	}

	if m.CurrentRound == nil {
		return nil, restoreError("an unfinished game requires a current round")
	}
	round, err := RestoreRound(*m.CurrentRound, shuffler)
	if err != nil {
		return nil, err
	}
	g.dealer = round.Dealer()
	g.attachRound(round)
	return g, nil
}
