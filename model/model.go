package model

import (
	"time"

	"github.com/uno-online/server/uno/card"
)

// Command is one inbound browser message.
type Command struct {
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`
	CardID string `json:"cardId,omitempty"`
	Color  string `json:"color,omitempty"`
	Emoji  string `json:"emoji,omitempty"`
	Ready  bool   `json:"ready,omitempty"`
}

// Event is one outbound message to a browser.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type Toast struct {
	Text string `json:"text"`
}

type Emoji struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Emoji      string `json:"emoji"`
}

type RoundOver struct {
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
}

type PlayerOut struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type ColorWanted struct {
	CardID string `json:"cardId"`
}

// PlayerView is how one player appears in everyone's snapshot. Hands
// of other players are exposed only as counts.
type PlayerView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CardCount     int    `json:"cardCount"`
	IsCurrentTurn bool   `json:"isCurrentTurn"`
	IsReady       bool   `json:"isReady,omitempty"`
	IsSpectator   bool   `json:"isSpectator,omitempty"`
	IsOut         bool   `json:"isOut,omitempty"`
}

// Snapshot is the full session state pushed after every accepted
// transition, personalized with the recipient's own hand.
type Snapshot struct {
	State         string       `json:"state"`
	Players       []PlayerView `json:"players"`
	CurrentPlayer string       `json:"currentPlayer,omitempty"`
	Direction     int          `json:"direction,omitempty"`
	ActiveColor   string       `json:"activeColor,omitempty"`
	TopCard       *card.Card   `json:"topCard,omitempty"`
	DrawPileSize  int          `json:"drawPileSize"`
	Hand          []card.Card  `json:"hand,omitempty"`
	WinnerID      string       `json:"winnerId,omitempty"`
	TurnDeadline  *time.Time   `json:"turnDeadline,omitempty"`
}
