package msg

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter renders game events as human-readable lines, used both
// for the browser toast feed and the server console feed.
type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn!", playerName)
}

func (m MessageWriter) PlayerTimedOut(playerName string) string {
	return Sprintfln("%s ran out of time and is out!", playerName)
}

func (m MessageWriter) PlayerWon(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) PlayerJoined(playerName string, spectator bool) string {
	if spectator {
		return Sprintfln("%s joined as a spectator!", playerName)
	}
	return Sprintfln("%s joined the game!", playerName)
}

func (m MessageWriter) PlayerLeft(playerName string) string {
	return Sprintfln("%s left the game!", playerName)
}

func (m MessageWriter) PlayerReady(playerName string, ready bool) string {
	if ready {
		return Sprintfln("%s is ready!", playerName)
	}
	return Sprintfln("%s is not ready!", playerName)
}

func (m MessageWriter) PlayerSentEmoji(playerName string, emoji string) string {
	return Sprintfln("%s says: %s", playerName, emoji)
}
