package game

import (
	"github.com/uno-online/server/uno/card"
)

// Hand holds a player's cards. Order carries no rules meaning.
type Hand struct {
	cards []card.Card
}

func NewHand(cards []card.Card) *Hand {
	hand := &Hand{cards: make([]card.Card, 0, len(cards))}
	hand.AddCards(cards)
	return hand
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Get(cardID string) (card.Card, bool) {
	for _, cardInHand := range h.cards {
		if cardInHand.ID == cardID {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) Remove(cardID string) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.ID == cardID {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
