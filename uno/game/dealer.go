package game

import (
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/uno/card"
)

// Deal partitions a shuffled deck into one 7-card hand per player plus
// the remaining draw pile. Hands are filled 7 cards at a time per
// player, popped from the end of the deck. One card beyond the hands is
// reserved to seed the discard pile.
func Deal(deck []card.Card, numPlayers int) ([][]card.Card, []card.Card, error) {
	if len(deck) < numPlayers*consts.HandSize+1 {
		return nil, nil, consts.ErrorsInsufficientCards
	}
	remainder := make([]card.Card, len(deck))
	copy(remainder, deck)

	hands := make([][]card.Card, numPlayers)
	for i := range hands {
		hand := make([]card.Card, 0, consts.HandSize)
		for len(hand) < consts.HandSize {
			hand = append(hand, remainder[len(remainder)-1])
			remainder = remainder[:len(remainder)-1]
		}
		hands[i] = hand
	}
	return hands, remainder, nil
}
