package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

func TestPlayable(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		lastPlayedCard card.Card
		activeColor    color.Color
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(0),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7, 1),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFourCard(0),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7, 1),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "card_matching_the_active_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5, 1),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7, 1),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number_different_color",
			candidateCard:  card.NewNumberCard(color.Red, 5, 1),
			lastPlayedCard: card.NewNumberCard(color.Blue, 5, 1),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.NewNumberCard(color.Yellow, 3, 1),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7, 1),
			activeColor:    color.Red,
			expectedResult: false,
		},
		{
			description:    "skip_cards_of_different_colors",
			candidateCard:  card.NewSkipCard(color.Green, 1),
			lastPlayedCard: card.NewSkipCard(color.Red, 1),
			activeColor:    color.Red,
			expectedResult: true,
		},
		{
			description:    "reverse_cards_of_different_colors",
			candidateCard:  card.NewReverseCard(color.Green, 1),
			lastPlayedCard: card.NewReverseCard(color.Blue, 1),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "draw_two_cards_of_different_colors",
			candidateCard:  card.NewDrawTwoCard(color.Red, 1),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue, 1),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "action_cards_of_different_kinds_and_colors",
			candidateCard:  card.NewReverseCard(color.Red, 1),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue, 1),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "active_color_overrides_the_top_card_color",
			candidateCard:  card.NewNumberCard(color.Green, 2, 1),
			lastPlayedCard: card.NewWildCard(0),
			activeColor:    color.Green,
			expectedResult: true,
		},
		{
			description:    "wrong_color_on_a_resolved_wild",
			candidateCard:  card.NewNumberCard(color.Red, 2, 1),
			lastPlayedCard: card.NewWildCard(0),
			activeColor:    color.Green,
			expectedResult: false,
		},
		{
			description:    "number_card_on_same_kind_action_card_is_not_a_kind_match",
			candidateCard:  card.NewNumberCard(color.Red, 7, 1),
			lastPlayedCard: card.NewSkipCard(color.Blue, 1),
			activeColor:    color.Blue,
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.lastPlayedCard, scenario.activeColor)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}
