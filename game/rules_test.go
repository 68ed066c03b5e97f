package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
	"github.com/unoline/uno/game"
)

func TestMatches(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		topCard        card.Card
		activeColor    color.Color
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWild(),
			topCard:        card.NewNumbered(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFour(),
			topCard:        card.NewNumbered(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "numbered_cards_with_same_color",
			candidateCard:  card.NewNumbered(color.Blue, 5),
			topCard:        card.NewNumbered(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "numbered_cards_with_same_number",
			candidateCard:  card.NewNumbered(color.Red, 7),
			topCard:        card.NewNumbered(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "numbered_cards_with_different_color_and_number",
			candidateCard:  card.NewNumbered(color.Red, 5),
			topCard:        card.NewNumbered(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "skip_cards_of_different_colors",
			candidateCard:  card.NewSkip(color.Red),
			topCard:        card.NewSkip(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "reverse_cards_of_different_colors",
			candidateCard:  card.NewReverse(color.Red),
			topCard:        card.NewReverse(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "draw_two_cards_of_different_colors",
			candidateCard:  card.NewDrawTwo(color.Red),
			topCard:        card.NewDrawTwo(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "action_cards_of_different_kinds_with_same_color",
			candidateCard:  card.NewReverse(color.Blue),
			topCard:        card.NewDrawTwo(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "action_cards_of_different_kinds_and_colors",
			candidateCard:  card.NewReverse(color.Red),
			topCard:        card.NewDrawTwo(color.Blue),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "action_card_on_numbered_card_with_same_color",
			candidateCard:  card.NewReverse(color.Blue),
			topCard:        card.NewNumbered(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "numbered_card_on_action_card_with_same_color",
			candidateCard:  card.NewNumbered(color.Blue, 7),
			topCard:        card.NewReverse(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "numbered_card_matching_the_chosen_color_of_a_wild",
			candidateCard:  card.NewNumbered(color.Blue, 7),
			topCard:        card.NewWild(),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "numbered_card_against_the_chosen_color_of_a_wild",
			candidateCard:  card.NewNumbered(color.Red, 7),
			topCard:        card.NewWild(),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "skip_card_matching_the_chosen_color_of_a_wild",
			candidateCard:  card.NewSkip(color.Green),
			topCard:        card.NewWildDrawFour(),
			activeColor:    color.Green,
			expectedResult: true,
		},
		{
			description:    "skip_card_against_the_chosen_color_of_a_wild",
			candidateCard:  card.NewSkip(color.Red),
			topCard:        card.NewWildDrawFour(),
			activeColor:    color.Green,
			expectedResult: false,
		},
		{
			description:    "numbered_card_matching_the_active_color_over_the_top_card",
			candidateCard:  card.NewNumbered(color.Green, 2),
			topCard:        card.NewNumbered(color.Blue, 7),
			activeColor:    color.Green,
			expectedResult: true,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Matches(scenario.candidateCard, scenario.topCard, scenario.activeColor)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}
