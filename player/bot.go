package player

import (
	"math/rand"

	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
)

// Bot decision policy: accuse a missed declaration half the time,
// forget its own declaration now and then, otherwise play the first
// legal card or draw.
const (
	forgetUnoProbability = 0.15
	catchUnoProbability  = 0.50
)

// Bot plays a seat without prompting anyone.
type Bot struct {
	name string
	rand *rand.Rand
}

// NewBot seeds the bot's own source so matches against bots are
// reproducible under a fixed seed.
func NewBot(name string, seed int64) *Bot {
	return &Bot{name: name, rand: rand.New(rand.NewSource(seed))}
}

func (b *Bot) Name() string {
	return b.name
}

func (b *Bot) Decide(snapshot Snapshot) []Decision {
	if last := snapshot.LastTurn; last != nil &&
		last.Player != snapshot.Me &&
		last.HandSize == 1 &&
		!last.SaidUno &&
		b.chance(catchUnoProbability) {
		return []Decision{{Action: ActionCatchUno, Accused: last.Player}}
	}

	var decisions []Decision
	if len(snapshot.Hand) == 2 && len(snapshot.Playable) > 0 && !b.chance(forgetUnoProbability) {
		decisions = append(decisions, Decision{Action: ActionSayUno})
	}

	if len(snapshot.Playable) == 0 {
		return append(decisions, Decision{Action: ActionDraw})
	}
	index := snapshot.Playable[0]
	decision := Decision{Action: ActionPlay, CardIndex: index}
	if isWildMemento(snapshot.Hand[index]) {
		decision.Color = b.pickColor(snapshot.Hand)
	}
	return append(decisions, decision)
}

func (b *Bot) chance(probability float64) bool {
	return b.rand.Float64() < probability
}

// pickColor favors the color the bot holds most of, so later plays
// stay legal.
func (b *Bot) pickColor(hand []card.Memento) color.Color {
	counts := make(map[color.Color]int)
	for _, m := range hand {
		if m.Color != color.None {
			counts[m.Color]++
		}
	}
	best := color.Blue
	bestCount := 0
	for _, c := range color.All {
		if counts[c] > bestCount {
			bestCount = counts[c]
			best = c
		}
	}
	return best
}

func isWildMemento(m card.Memento) bool {
	return m.Type == card.TypeWild || m.Type == card.TypeWildDrawFour
}
