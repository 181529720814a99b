package game

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// Playable reports whether candidateCard may be placed on lastPlayedCard
// under the given active color. Precedence: wild family always, then
// active-color match, then same number, then same action kind.
func Playable(candidateCard card.Card, lastPlayedCard card.Card, activeColor color.Color) bool {
	if candidateCard.Color == color.Black {
		return true
	}
	if candidateCard.Color == activeColor {
		return true
	}
	if candidateCard.Kind == card.Number && lastPlayedCard.Kind == card.Number {
		return candidateCard.Value == lastPlayedCard.Value
	}
	return candidateCard.Kind == lastPlayedCard.Kind
}
