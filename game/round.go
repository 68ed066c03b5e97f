package game

import (
	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
)

const (
	MinPlayers            = 2
	MaxPlayers            = 10
	DefaultCardsPerPlayer = 7

	drawTwoPenalty  = 2
	drawFourPenalty = 4
	unoPenalty      = 4
)

// RoundConfig configures a single hand.
type RoundConfig struct {
	Players []string
	Dealer  int
	// Shuffler defaults to StandardShuffler.
	Shuffler Shuffler
	// CardsPerPlayer defaults to DefaultCardsPerPlayer when zero.
	CardsPerPlayer int
}

// Result is handed to completion subscribers when a hand empties.
type Result struct {
	Winner int
}

// unoWindow ties an accusation or declaration to one tick of the
// action counter.
type unoWindow struct {
	player   int
	actionID int
}

// Round is the turn state machine for a single hand. It is
// single-writer: callers serialize their own actions, and enforcing
// that only the seat in turn acts is the caller's job, checked
// against PlayerInTurn.
type Round struct {
	players  []string
	dealer   int
	hands    []*Hand
	turn     *Cycler
	drawPile *Deck
	discard  *DiscardPile
	shuffler Shuffler

	actionCounter int
	pendingUno    *unoWindow
	declaredUno   *unoWindow

	finished   bool
	winner     int
	finalScore int
	onEnd      []func(Result)
}

// NewRound shuffles a fresh deck, deals one card at a time around
// the table starting with the dealer's own seat, flips a non-wild
// starting card (reshuffling wilds back in) and applies its effect as
// if the dealer had played it.
func NewRound(config RoundConfig) (*Round, error) {
	seats := len(config.Players)
	if seats < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if seats > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	cardsPerPlayer := config.CardsPerPlayer
	if cardsPerPlayer == 0 {
		cardsPerPlayer = DefaultCardsPerPlayer
	}
	if cardsPerPlayer < 0 {
		return nil, ErrCardsPerPlayer
	}
	shuffler := config.Shuffler
	if shuffler == nil {
		shuffler = StandardShuffler
	}

	players := make([]string, seats)
	copy(players, config.Players)
	r := &Round{
		players:  players,
		dealer:   mod(config.Dealer, seats),
		hands:    make([]*Hand, seats),
		turn:     NewCycler(seats),
		drawPile: NewFullDeck(),
		discard:  NewDiscardPile(),
		shuffler: shuffler,
	}
	for seat := range r.hands {
		r.hands[seat] = NewHand()
	}

	r.drawPile.Shuffle(r.shuffler)
	for i := 0; i < cardsPerPlayer; i++ {
		for offset := 0; offset < seats; offset++ {
			c, ok := r.drawPile.Deal()
			if !ok {
				break
			}
			r.hands[mod(r.dealer+offset, seats)].Add(c)
		}
	}

	r.turn.Seek(r.dealer + 1)
	if top, ok := r.flipStartingCard(); ok {
		r.discard.Add(top, color.None)
		r.applyOpeningCard(top)
	}
	return r, nil
}

// flipStartingCard deals until a non-wild surfaces, returning each
// wild to the draw pile and reshuffling before retrying.
func (r *Round) flipStartingCard() (card.Card, bool) {
	for {
		top, ok := r.drawPile.Deal()
		if !ok {
			return nil, false
		}
		if !card.IsWild(top) {
			return top, true
		}
		r.drawPile.Add(top)
		r.drawPile.Shuffle(r.shuffler)
	}
}

// applyOpeningCard treats the starting card as the dealer's play.
func (r *Round) applyOpeningCard(top card.Card) {
	seats := len(r.players)
	switch top.(type) {
	case card.Reverse:
		r.turn.Reverse()
		r.turn.Seek(r.dealer - 1)
	case card.Skip:
		r.turn.Seek(r.dealer + 2)
	case card.DrawTwo:
		r.forceDraw(mod(r.dealer+1, seats), drawTwoPenalty)
		r.turn.Seek(r.dealer + 2)
	case card.Numbered, card.Wild, card.WildDrawFour:
		// numbered leaves the seat after the dealer in turn; wilds
		// never start the discard
	}
}

func (r *Round) PlayerCount() int {
	return len(r.players)
}

func (r *Round) Dealer() int {
	return r.dealer
}

// Player returns the name at seat index.
func (r *Round) Player(index int) (string, error) {
	if index < 0 || index >= len(r.players) {
		return "", ErrPlayerOutOfBounds
	}
	return r.players[index], nil
}

// PlayerHand returns a copy of the hand at seat index, or nil when
// the index is out of range.
func (r *Round) PlayerHand(index int) []card.Card {
	if index < 0 || index >= len(r.hands) {
		return nil
	}
	return r.hands[index].Cards()
}

// PlayerInTurn reports the seat expected to act next; ok is false
// once the round has finished.
func (r *Round) PlayerInTurn() (int, bool) {
	if r.finished {
		return 0, false
	}
	return r.turn.Current(), true
}

func (r *Round) DrawPileSize() int {
	return r.drawPile.Size()
}

func (r *Round) DiscardPileSize() int {
	return r.discard.Size()
}

// TopOfDiscard is the card plays are matched against.
func (r *Round) TopOfDiscard() (card.Card, bool) {
	return r.discard.Top()
}

func (r *Round) ActiveColor() color.Color {
	return r.discard.ActiveColor()
}

// CanPlay reports whether the seat in turn may legally play the card
// at cardIndex. A wild-draw-four is legal only while no other card in
// the hand matches the active color.
func (r *Round) CanPlay(cardIndex int) bool {
	if r.finished {
		return false
	}
	hand := r.hands[r.turn.Current()]
	candidate, ok := hand.Card(cardIndex)
	if !ok {
		return false
	}
	top, ok := r.discard.Top()
	if !ok {
		return false
	}
	active := r.discard.ActiveColor()
	if _, restricted := candidate.(card.WildDrawFour); restricted {
		return !holdsOtherActiveColor(hand, cardIndex, active)
	}
	return Matches(candidate, top, active)
}

func holdsOtherActiveColor(hand *Hand, exceptIndex int, active color.Color) bool {
	if active == color.None {
		return false
	}
	for i, c := range hand.cards {
		if i != exceptIndex && c.Color() == active {
			return true
		}
	}
	return false
}

// CanPlayAny reports whether any card in the current hand is legal.
func (r *Round) CanPlayAny() bool {
	if r.finished {
		return false
	}
	hand := r.hands[r.turn.Current()]
	for i := 0; i < hand.Size(); i++ {
		if r.CanPlay(i) {
			return true
		}
	}
	return false
}

// CanDraw reports whether Draw can yield a card, counting the
// reshuffle it would perform on an empty draw pile.
func (r *Round) CanDraw() bool {
	return !r.finished && (r.drawPile.Size() > 0 || r.discard.Size() > 1)
}

// Play discards the card at cardIndex for the seat in turn. Wilds
// must name chosen; any other card must not. The turn then advances
// according to the card's effect, and the round finishes if the hand
// emptied.
func (r *Round) Play(cardIndex int, chosen color.Color) (card.Card, error) {
	actor := r.turn.Current()
	r.beginAction(actor)
	if r.finished {
		return nil, ErrRoundFinished
	}
	if !r.CanPlay(cardIndex) {
		return nil, ErrIllegalPlay
	}
	hand := r.hands[actor]
	played, _ := hand.Card(cardIndex)
	if card.IsWild(played) {
		if !chosen.Valid() {
			return nil, ErrWildColorRequired
		}
	} else if chosen != color.None {
		return nil, ErrColorOnNonWild
	}

	if _, err := hand.RemoveAt(cardIndex); err != nil {
		return nil, err
	}
	if card.IsWild(played) {
		r.discard.Add(played, chosen)
	} else {
		r.discard.Add(played, color.None)
	}

	if hand.Size() == 1 {
		if r.declaredUno != nil && r.declaredUno.player == actor && r.declaredUno.actionID == r.actionCounter {
			r.declaredUno = nil
		} else {
			r.pendingUno = &unoWindow{player: actor, actionID: r.actionCounter}
		}
	}

	r.applyCardEffect(played)
	r.turn.Next()

	if hand.Empty() {
		r.finish(actor)
	}
	return played, nil
}

func (r *Round) applyCardEffect(played card.Card) {
	switch played.(type) {
	case card.Skip:
		r.turn.Next()
	case card.Reverse:
		r.turn.Reverse()
		// with two players a reverse acts as a skip
		if len(r.players) == 2 {
			r.turn.Next()
		}
	case card.DrawTwo:
		r.turn.Next()
		r.forceDraw(r.turn.Current(), drawTwoPenalty)
	case card.WildDrawFour:
		r.turn.Next()
		r.forceDraw(r.turn.Current(), drawFourPenalty)
	case card.Numbered, card.Wild:
		// no effect beyond the normal turn advance
	}
}

// Draw deals one card to the seat in turn, reshuffling the discard
// pile first if the draw pile is empty. The turn stays with the
// drawer only when the drawn card is immediately playable.
func (r *Round) Draw() (card.Card, error) {
	actor := r.turn.Current()
	r.beginAction(actor)
	if r.finished {
		return nil, ErrRoundFinished
	}
	if r.drawPile.Size() == 0 {
		r.reshuffleDiscard()
	}
	drawn, ok := r.drawPile.Deal()
	if !ok {
		return nil, ErrDrawPileExhausted
	}
	hand := r.hands[actor]
	hand.Add(drawn)
	if !r.CanPlay(hand.Size() - 1) {
		r.turn.Next()
	}
	return drawn, nil
}

// forceDraw deals a penalty to a seat, reshuffling when the pile
// empties mid-draw. A starved pile silently shortens the penalty.
func (r *Round) forceDraw(seat int, count int) {
	for i := 0; i < count; i++ {
		if r.drawPile.Size() == 0 {
			r.reshuffleDiscard()
		}
		c, ok := r.drawPile.Deal()
		if !ok {
			return
		}
		r.hands[seat].Add(c)
	}
}

// reshuffleDiscard moves everything below the discard top into the
// draw pile. The top card and the active color stay. A discard of
// size <= 1 cannot be reshuffled and is left as-is.
func (r *Round) reshuffleDiscard() {
	below := r.discard.takeBelowTop()
	if len(below) == 0 {
		return
	}
	r.shuffler(below)
	for _, c := range below {
		r.drawPile.Add(c)
	}
}

// beginAction ticks the logical clock. An accusation window survives
// only until a different seat acts.
func (r *Round) beginAction(actor int) {
	if r.pendingUno != nil && r.pendingUno.player != actor {
		r.pendingUno = nil
	}
	r.actionCounter++
}

// SayUno closes the caller's own open accusation window, or, for the
// seat in turn, pre-declares for the upcoming play. Any other call is
// a no-op.
func (r *Round) SayUno(player int) error {
	if r.finished {
		return ErrRoundFinished
	}
	if player < 0 || player >= len(r.players) {
		return ErrPlayerOutOfBounds
	}
	if r.pendingUno != nil && r.pendingUno.player == player && r.pendingUno.actionID == r.actionCounter {
		r.pendingUno = nil
		return nil
	}
	if player == r.turn.Current() {
		r.declaredUno = &unoWindow{player: player, actionID: r.actionCounter + 1}
	}
	return nil
}

// CatchUnoFailure accuses accused of holding one undeclared card. It
// succeeds only while accused's window is open and their hand still
// holds exactly one card; success costs accused four cards.
func (r *Round) CatchUnoFailure(accuser, accused int) (bool, error) {
	if r.finished {
		return false, nil
	}
	if accused < 0 || accused >= len(r.players) {
		return false, ErrPlayerOutOfBounds
	}
	if accuser < 0 || accuser >= len(r.players) {
		return false, ErrPlayerOutOfBounds
	}
	if r.pendingUno == nil || r.pendingUno.player != accused {
		return false, nil
	}
	if r.hands[accused].Size() != 1 {
		return false, nil
	}
	r.forceDraw(accused, unoPenalty)
	r.pendingUno = nil
	return true, nil
}

// OnEnd registers a completion subscriber, invoked once when a hand
// empties. The round holds no reference back to the subscriber's
// owner.
func (r *Round) OnEnd(notify func(Result)) {
	r.onEnd = append(r.onEnd, notify)
}

func (r *Round) finish(winner int) {
	r.finished = true
	r.winner = winner
	score := 0
	for _, hand := range r.hands {
		score += hand.Score()
	}
	r.finalScore = score
	for _, notify := range r.onEnd {
		notify(Result{Winner: winner})
	}
}

func (r *Round) HasEnded() bool {
	return r.finished
}

// Winner reports the emptied-hand seat once the round has finished.
func (r *Round) Winner() (int, bool) {
	if !r.finished {
		return 0, false
	}
	return r.winner, true
}

// Score is the sum over all losing hands of their card values,
// available once the round has finished.
func (r *Round) Score() (int, bool) {
	if !r.finished {
		return 0, false
	}
	return r.finalScore, true
}

func mod(value, modulus int) int {
	return ((value % modulus) + modulus) % modulus
}
