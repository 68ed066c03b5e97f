package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
	"github.com/unoline/uno/player"
)

func handMementos(cards ...card.Card) []card.Memento {
	ms := make([]card.Memento, len(cards))
	for i, c := range cards {
		ms[i] = c.Memento()
	}
	return ms
}

func TestBotDecide(t *testing.T) {
	t.Run("draws_when_nothing_is_playable", func(t *testing.T) {
		bot := player.NewBot("bot", 1)
		decisions := bot.Decide(player.Snapshot{
			Me:   0,
			Hand: handMementos(card.NewNumbered(color.Red, 9)),
		})
		require.Equal(t, []player.Decision{{Action: player.ActionDraw}}, decisions)
	})

	t.Run("plays_the_first_playable_card", func(t *testing.T) {
		bot := player.NewBot("bot", 1)
		decisions := bot.Decide(player.Snapshot{
			Me: 0,
			Hand: handMementos(
				card.NewNumbered(color.Red, 9),
				card.NewNumbered(color.Blue, 5),
				card.NewNumbered(color.Blue, 7),
			),
			Playable: []int{1, 2},
		})
		require.Equal(t, []player.Decision{{Action: player.ActionPlay, CardIndex: 1}}, decisions)
	})

	t.Run("names_its_dominant_color_on_a_wild", func(t *testing.T) {
		bot := player.NewBot("bot", 1)
		decisions := bot.Decide(player.Snapshot{
			Me: 0,
			Hand: handMementos(
				card.NewWild(),
				card.NewNumbered(color.Green, 2),
				card.NewNumbered(color.Green, 4),
				card.NewNumbered(color.Red, 9),
			),
			Playable: []int{0},
		})
		require.Len(t, decisions, 1)
		require.Equal(t, player.ActionPlay, decisions[0].Action)
		require.Equal(t, 0, decisions[0].CardIndex)
		require.Equal(t, color.Green, decisions[0].Color)
	})

	t.Run("usually_says_uno_before_its_penultimate_play", func(t *testing.T) {
		snapshot := player.Snapshot{
			Me: 0,
			Hand: handMementos(
				card.NewNumbered(color.Blue, 5),
				card.NewNumbered(color.Blue, 7),
			),
			Playable: []int{0, 1},
		}

		declared := 0
		for seed := int64(1); seed <= 50; seed++ {
			decisions := player.NewBot("bot", seed).Decide(snapshot)
			switch len(decisions) {
			case 1:
				assert.Equal(t, player.ActionPlay, decisions[0].Action)
			case 2:
				assert.Equal(t, player.ActionSayUno, decisions[0].Action)
				assert.Equal(t, player.ActionPlay, decisions[1].Action)
				declared++
			default:
				t.Fatalf("unexpected decision count %d", len(decisions))
			}
		}
		assert.Greater(t, declared, 0)
	})

	t.Run("sometimes_catches_a_missed_declaration", func(t *testing.T) {
		snapshot := player.Snapshot{
			Me:       0,
			Hand:     handMementos(card.NewNumbered(color.Red, 9)),
			LastTurn: &player.LastTurn{Player: 1, HandSize: 1, SaidUno: false},
		}

		accusations := 0
		for seed := int64(1); seed <= 50; seed++ {
			decisions := player.NewBot("bot", seed).Decide(snapshot)
			require.Len(t, decisions, 1)
			switch decisions[0].Action {
			case player.ActionCatchUno:
				assert.Equal(t, 1, decisions[0].Accused)
				accusations++
			case player.ActionDraw:
			default:
				t.Fatalf("unexpected action %v", decisions[0].Action)
			}
		}
		assert.Greater(t, accusations, 0)
		assert.Less(t, accusations, 50)
	})

	t.Run("never_accuses_a_declared_uno", func(t *testing.T) {
		snapshot := player.Snapshot{
			Me:       0,
			Hand:     handMementos(card.NewNumbered(color.Red, 9)),
			LastTurn: &player.LastTurn{Player: 1, HandSize: 1, SaidUno: true},
		}
		for seed := int64(1); seed <= 20; seed++ {
			decisions := player.NewBot("bot", seed).Decide(snapshot)
			require.Equal(t, []player.Decision{{Action: player.ActionDraw}}, decisions)
		}
	})

	t.Run("never_accuses_itself", func(t *testing.T) {
		snapshot := player.Snapshot{
			Me:       1,
			Hand:     handMementos(card.NewNumbered(color.Red, 9)),
			LastTurn: &player.LastTurn{Player: 1, HandSize: 1, SaidUno: false},
		}
		for seed := int64(1); seed <= 20; seed++ {
			decisions := player.NewBot("bot", seed).Decide(snapshot)
			require.Equal(t, []player.Decision{{Action: player.ActionDraw}}, decisions)
		}
	})
}

func TestBotName(t *testing.T) {
	require.Equal(t, "Braum", player.NewBot("Braum", 1).Name())
}
