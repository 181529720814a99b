package game

import (
	"math/rand"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// DeckSize is the standard UNO deck size: 25 cards per color plus
// 4 wilds and 4 wild-draw-fours.
const DeckSize = 108

// NewDeck builds a complete shuffled 108-card deck.
func NewDeck(rng *rand.Rand) []card.Card {
	cards := make([]card.Card, 0, DeckSize)
	for _, cardColor := range color.Picks {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	shuffleCards(rng, cards)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{
		card.NewNumberCard(cardColor, 0, 1),
	}
	for value := 1; value <= 9; value++ {
		cards = append(cards,
			card.NewNumberCard(cardColor, value, 1),
			card.NewNumberCard(cardColor, value, 2),
		)
	}
	cards = append(cards,
		card.NewSkipCard(cardColor, 1), card.NewSkipCard(cardColor, 2),
		card.NewReverseCard(cardColor, 1), card.NewReverseCard(cardColor, 2),
		card.NewDrawTwoCard(cardColor, 1), card.NewDrawTwoCard(cardColor, 2),
	)
	return cards
}

func createBlackCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for copyIndex := 0; copyIndex < 4; copyIndex++ {
		cards = append(cards, card.NewWildCard(copyIndex), card.NewWildDrawFourCard(copyIndex))
	}
	return cards
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
