package card_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

func TestCardIDs(t *testing.T) {
	tests := []struct {
		description string
		card        card.Card
		expected    string
	}{
		{"zero_number_card_has_no_copy_suffix", card.NewNumberCard(color.Red, 0, 0), "red-0"},
		{"number_card_carries_its_copy_index", card.NewNumberCard(color.Blue, 5, 1), "blue-5-1"},
		{"skip_card", card.NewSkipCard(color.Green, 0), "green-skip-0"},
		{"reverse_card", card.NewReverseCard(color.Yellow, 1), "yellow-reverse-1"},
		{"draw_two_card", card.NewDrawTwoCard(color.Red, 1), "red-draw2-1"},
		{"wild_card", card.NewWildCard(2), "wild-2"},
		{"wild_draw_four_card", card.NewWildDrawFourCard(3), "wild4-3"},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.card.ID)
		})
	}
}

func TestIsWild(t *testing.T) {
	require.True(t, card.NewWildCard(0).IsWild())
	require.True(t, card.NewWildDrawFourCard(0).IsWild())
	require.False(t, card.NewNumberCard(color.Red, 5, 1).IsWild())
	require.False(t, card.NewSkipCard(color.Blue, 0).IsWild())
}

func TestEqual(t *testing.T) {
	require.True(t, card.NewNumberCard(color.Red, 5, 1).Equal(card.NewNumberCard(color.Red, 5, 1)))
	require.False(t, card.NewNumberCard(color.Red, 5, 1).Equal(card.NewNumberCard(color.Red, 5, 2)))
}

func TestCardJSON(t *testing.T) {
	t.Run("number_card_round_trips_with_readable_names", func(t *testing.T) {
		data, err := jsoniter.Marshal(card.NewNumberCard(color.Blue, 5, 1))
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"blue-5-1","color":"blue","type":"number","value":5}`, string(data))

		var decoded card.Card
		require.NoError(t, jsoniter.Unmarshal(data, &decoded))
		require.Equal(t, card.NewNumberCard(color.Blue, 5, 1), decoded)
	})

	t.Run("wild_draw_four_marshals_black_with_no_value", func(t *testing.T) {
		data, err := jsoniter.Marshal(card.NewWildDrawFourCard(0))
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"wild4-0","color":"black","type":"wild4"}`, string(data))
	})

	t.Run("unknown_kind_name_is_rejected", func(t *testing.T) {
		var decoded card.Card
		err := jsoniter.Unmarshal([]byte(`{"id":"x","color":"red","type":"draw9"}`), &decoded)
		require.Error(t, err)
	})
}
