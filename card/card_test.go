package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
)

func TestScore(t *testing.T) {
	scenarios := []struct {
		description   string
		card          card.Card
		expectedScore int
	}{
		{
			description:   "numbered_card_scores_its_number",
			card:          card.NewNumbered(color.Blue, 7),
			expectedScore: 7,
		},
		{
			description:   "zero_card_scores_nothing",
			card:          card.NewNumbered(color.Red, 0),
			expectedScore: 0,
		},
		{
			description:   "skip_card_scores_twenty",
			card:          card.NewSkip(color.Green),
			expectedScore: 20,
		},
		{
			description:   "reverse_card_scores_twenty",
			card:          card.NewReverse(color.Yellow),
			expectedScore: 20,
		},
		{
			description:   "draw_two_card_scores_twenty",
			card:          card.NewDrawTwo(color.Blue),
			expectedScore: 20,
		},
		{
			description:   "wild_card_scores_fifty",
			card:          card.NewWild(),
			expectedScore: 50,
		},
		{
			description:   "wild_draw_four_card_scores_fifty",
			card:          card.NewWildDrawFour(),
			expectedScore: 50,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedScore, scenario.card.Score())
		})
	}
}

func TestColor(t *testing.T) {
	assert.Equal(t, color.Blue, card.NewNumbered(color.Blue, 7).Color())
	assert.Equal(t, color.Green, card.NewSkip(color.Green).Color())
	assert.Equal(t, color.Red, card.NewReverse(color.Red).Color())
	assert.Equal(t, color.Yellow, card.NewDrawTwo(color.Yellow).Color())
	assert.Equal(t, color.None, card.NewWild().Color())
	assert.Equal(t, color.None, card.NewWildDrawFour().Color())
}

func TestIsWild(t *testing.T) {
	assert.True(t, card.IsWild(card.NewWild()))
	assert.True(t, card.IsWild(card.NewWildDrawFour()))
	assert.False(t, card.IsWild(card.NewNumbered(color.Blue, 7)))
	assert.False(t, card.IsWild(card.NewSkip(color.Blue)))
	assert.False(t, card.IsWild(card.NewReverse(color.Blue)))
	assert.False(t, card.IsWild(card.NewDrawTwo(color.Blue)))
}

func TestCardsCompareByValue(t *testing.T) {
	assert.Equal(t, card.NewNumbered(color.Blue, 7), card.NewNumbered(color.Blue, 7))
	assert.NotEqual(t, card.NewNumbered(color.Blue, 7), card.NewNumbered(color.Blue, 8))
	assert.NotEqual(t, card.NewSkip(color.Blue), card.NewSkip(color.Red))
	assert.Equal(t, card.NewWild(), card.NewWild())
}
