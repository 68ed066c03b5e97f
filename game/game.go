package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultTargetScore is the match target when the config names none.
const DefaultTargetScore = 500

// Config configures a match.
type Config struct {
	// Players defaults to a two-seat game, "A" and "B".
	Players []string
	// TargetScore defaults to DefaultTargetScore when zero.
	TargetScore int
	// CardsPerPlayer defaults to DefaultCardsPerPlayer when zero.
	CardsPerPlayer int
	// Randomizer picks the first dealer; defaults to
	// StandardRandomizer.
	Randomizer Randomizer
	// Shuffler defaults to StandardShuffler.
	Shuffler Shuffler
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// Game runs rounds until one player's accumulated score reaches the
// target. Exactly one of a current round or a winner exists once the
// match has started.
type Game struct {
	id             uuid.UUID
	players        []string
	targetScore    int
	cardsPerPlayer int
	shuffler       Shuffler
	log            logrus.FieldLogger

	scores       []int
	dealer       int
	currentRound *Round
	winner       *int
}

// NewGame validates the config, picks the first dealer through the
// randomizer and starts the first round.
func NewGame(config Config) (*Game, error) {
	players, err := normalizePlayers(config.Players)
	if err != nil {
		return nil, err
	}
	targetScore := config.TargetScore
	if targetScore == 0 {
		targetScore = DefaultTargetScore
	}
	if targetScore < 0 {
		return nil, ErrTargetScore
	}
	cardsPerPlayer := config.CardsPerPlayer
	if cardsPerPlayer == 0 {
		cardsPerPlayer = DefaultCardsPerPlayer
	}
	if cardsPerPlayer < 0 {
		return nil, ErrCardsPerPlayer
	}
	randomizer := config.Randomizer
	if randomizer == nil {
		randomizer = StandardRandomizer
	}
	shuffler := config.Shuffler
	if shuffler == nil {
		shuffler = StandardShuffler
	}

	g := newGameShell(players, targetScore, cardsPerPlayer, shuffler)
	if config.Logger != nil {
		g.log = config.Logger.WithField("game", g.id)
	}
	g.dealer = mod(randomizer(len(players)), len(players))
	if err := g.startRound(); err != nil {
		return nil, err
	}
	return g, nil
}

func newGameShell(players []string, targetScore, cardsPerPlayer int, shuffler Shuffler) *Game {
	g := &Game{
		id:             uuid.New(),
		players:        players,
		targetScore:    targetScore,
		cardsPerPlayer: cardsPerPlayer,
		shuffler:       shuffler,
		scores:         make([]int, len(players)),
	}
	g.log = logrus.StandardLogger().WithField("game", g.id)
	return g
}

func normalizePlayers(players []string) ([]string, error) {
	if len(players) == 0 {
		return []string{"A", "B"}, nil
	}
	if len(players) < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(players) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	owned := make([]string, len(players))
	copy(owned, players)
	return owned, nil
}

func (g *Game) startRound() error {
	round, err := NewRound(RoundConfig{
		Players:        g.players,
		Dealer:         g.dealer,
		Shuffler:       g.shuffler,
		CardsPerPlayer: g.cardsPerPlayer,
	})
	if err != nil {
		return err
	}
	g.attachRound(round)
	return nil
}

func (g *Game) attachRound(round *Round) {
	g.currentRound = round
	round.OnEnd(g.handleRoundEnd)
}

// handleRoundEnd credits the winner and either finishes the match or
// hands the deal to the round's winner.
func (g *Game) handleRoundEnd(result Result) {
	if g.currentRound == nil {
		return
	}
	score, _ := g.currentRound.Score()
	g.scores[result.Winner] += score
	g.log.WithFields(logrus.Fields{
		"winner":     g.players[result.Winner],
		"roundScore": score,
		"total":      g.scores[result.Winner],
	}).Info("round finished")

	if g.scores[result.Winner] >= g.targetScore {
		winner := result.Winner
		g.winner = &winner
		g.currentRound = nil
		g.log.WithField("winner", g.players[winner]).Info("game finished")
		return
	}
	g.dealer = result.Winner
	if err := g.startRound(); err != nil {
		// config was validated at creation, so this cannot happen
		g.log.WithError(err).Error("failed to start next round")
	}
}

// ID identifies the match in logs. It is not part of the memento.
func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) PlayerCount() int {
	return len(g.players)
}

func (g *Game) TargetScore() int {
	return g.targetScore
}

// Player returns the name at seat index.
func (g *Game) Player(index int) (string, error) {
	if index < 0 || index >= len(g.players) {
		return "", ErrPlayerOutOfBounds
	}
	return g.players[index], nil
}

// Score returns the accumulated score at seat index.
func (g *Game) Score(index int) (int, error) {
	if index < 0 || index >= len(g.scores) {
		return 0, ErrPlayerOutOfBounds
	}
	return g.scores[index], nil
}

// Winner reports the match winner once a score has reached the
// target.
func (g *Game) Winner() (int, bool) {
	if g.winner == nil {
		return 0, false
	}
	return *g.winner, true
}

// CurrentRound is the round in progress, or nil once the match has a
// winner.
func (g *Game) CurrentRound() *Round {
	return g.currentRound
}
