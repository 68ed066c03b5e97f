package main

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/unoline/uno/game"
	"github.com/unoline/uno/player"
	"github.com/unoline/uno/ui"
)

func main() {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(envString("UNO_LOG_LEVEL", "warn")); err == nil {
		logger.SetLevel(level)
	}

	names := strings.Split(envString("UNO_PLAYERS", "You,Braum,Jinx"), ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	saveFile := envString("UNO_SAVE_FILE", "")

	g, err := loadOrCreateGame(names, saveFile, logger)
	if err != nil {
		logger.WithError(err).Fatal("could not start game")
	}

	// seat names come from the game itself: a resumed save wins over
	// the environment
	botsOnly := envString("UNO_BOTS_ONLY", "") != ""
	controllers := make([]player.Player, g.PlayerCount())
	for seat := range controllers {
		name, _ := g.Player(seat)
		if seat == 0 && !botsOnly {
			controllers[seat] = player.NewHuman(name)
		} else {
			controllers[seat] = player.NewBot(name, time.Now().UnixNano()+int64(seat))
		}
	}

	run(g, controllers, saveFile, !botsOnly, logger)

	if winner, ok := g.Winner(); ok {
		name, _ := g.Player(winner)
		score, _ := g.Score(winner)
		ui.Printfln("%s wins the game with %d points!", name, score)
	}
}

// run applies one decision at a time against the live round; the
// engine is single-writer, so nothing here overlaps.
func run(g *game.Game, controllers []player.Player, saveFile string, withDelays bool, logger *logrus.Logger) {
	var lastTurn *player.LastTurn
	round := g.CurrentRound()
	for round != nil {
		seat, ok := round.PlayerInTurn()
		if !ok {
			break
		}
		// a starved draw pile can leave the seat in turn without a
		// legal move; give up on the round instead of spinning
		if !round.CanPlayAny() && !round.CanDraw() {
			ui.Println("No playable card and nothing left to draw; the round is stalled.")
			logger.Warn("round stalled with no legal moves")
			break
		}
		controller := controllers[seat]
		snapshot := player.TakeSnapshot(round, seat, lastTurn)
		if _, isBot := controller.(*player.Bot); isBot && withDelays {
			time.Sleep(time.Duration(250+rand.Intn(650)) * time.Millisecond)
		}

		saidUno := false
		for _, decision := range controller.Decide(snapshot) {
			if err := apply(round, seat, decision, controllers); err != nil {
				ui.Printfln("%s: %v", controller.Name(), err)
				break
			}
			if decision.Action == player.ActionSayUno {
				saidUno = true
			}
		}
		lastTurn = &player.LastTurn{
			Player:   seat,
			HandSize: len(round.PlayerHand(seat)),
			SaidUno:  saidUno,
		}

		if next := g.CurrentRound(); next != round {
			announceRound(g, round)
			persist(g, saveFile, logger)
			round = next
			lastTurn = nil
		}
	}
	persist(g, saveFile, logger)
}

func apply(round *game.Round, seat int, decision player.Decision, controllers []player.Player) error {
	switch decision.Action {
	case player.ActionPlay:
		played, err := round.Play(decision.CardIndex, decision.Color)
		if err != nil {
			return err
		}
		name, _ := round.Player(seat)
		ui.Printfln("%s played %s", name, played)
	case player.ActionDraw:
		if _, err := round.Draw(); err != nil {
			return err
		}
		name, _ := round.Player(seat)
		ui.Printfln("%s drew a card", name)
	case player.ActionSayUno:
		if err := round.SayUno(seat); err != nil {
			return err
		}
		name, _ := round.Player(seat)
		ui.Printfln("%s says UNO!", name)
	case player.ActionCatchUno:
		caught, err := round.CatchUnoFailure(seat, decision.Accused)
		if err != nil {
			return err
		}
		if caught {
			accuser := controllers[seat].Name()
			accused := controllers[decision.Accused].Name()
			ui.Printfln("%s caught %s forgetting to say UNO! +4 cards", accuser, accused)
		}
	}
	return nil
}

func announceRound(g *game.Game, finished *game.Round) {
	winner, ok := finished.Winner()
	if !ok {
		return
	}
	name, _ := g.Player(winner)
	score, _ := finished.Score()
	total, _ := g.Score(winner)
	ui.Printfln("%s wins the round for %d points (total %d)", name, score, total)
}

func loadOrCreateGame(names []string, saveFile string, logger *logrus.Logger) (*game.Game, error) {
	if saveFile != "" {
		if data, err := os.ReadFile(saveFile); err == nil {
			memento, err := game.DecodeMemento(data)
			if err != nil {
				return nil, err
			}
			logger.WithField("file", saveFile).Info("resuming saved game")
			return game.RestoreGame(memento, nil, nil)
		}
	}
	return game.NewGame(game.Config{
		Players:     names,
		TargetScore: envInt("UNO_TARGET_SCORE", game.DefaultTargetScore),
		CardsPerPlayer: envInt(
			"UNO_CARDS_PER_PLAYER", game.DefaultCardsPerPlayer),
		Logger: logger,
	})
}

func persist(g *game.Game, saveFile string, logger *logrus.Logger) {
	if saveFile == "" {
		return
	}
	data, err := game.EncodeMemento(g.ToMemento())
	if err != nil {
		logger.WithError(err).Error("could not encode game state")
		return
	}
	if err := os.WriteFile(saveFile, data, 0o644); err != nil {
		logger.WithError(err).Error("could not save game state")
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
