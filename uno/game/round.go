package game

import (
	"time"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// Seat is one slot in the turn rotation. Spectators never get a seat.
// A timed-out seat is marked Out but keeps its place in the rotation
// arithmetic and keeps its hand.
type Seat struct {
	PlayerID string
	Name     string
	Hand     *Hand
	Out      bool
}

// Round is the authoritative per-round aggregate. It is mutated only by
// Engine transitions; the engine owner serializes access.
type Round struct {
	Seats         []*Seat
	CurrentIndex  int
	Direction     int
	DrawPile      []card.Card
	DiscardPile   []card.Card
	ActiveColor   color.Color
	Started       bool
	WinnerID      string
	TurnStartedAt time.Time
	TurnTimeLimit time.Duration
}

// Finished reports whether the round reached its terminal state.
func (r *Round) Finished() bool {
	return r.WinnerID != ""
}

func (r *Round) CurrentSeat() *Seat {
	return r.Seats[r.CurrentIndex]
}

func (r *Round) Seat(playerID string) *Seat {
	for _, seat := range r.Seats {
		if seat.PlayerID == playerID {
			return seat
		}
	}
	return nil
}

// Top is the card new plays are validated against. The discard pile is
// never empty once the round has started.
func (r *Round) Top() card.Card {
	return r.DiscardPile[len(r.DiscardPile)-1]
}

// step advances an index by one seat in the current direction,
// normalized into [0, len(Seats)). Out seats stay in the modulus.
func (r *Round) step(index int) int {
	seatCount := len(r.Seats)
	return (index + r.Direction + seatCount) % seatCount
}

// settle moves past timed-out seats so the turn lands on a live seat.
// Effect targeting (draw-two, draw-four, skip) works on raw indexes
// and can still hit an out seat. If every seat is out the index is
// returned as-is.
func (r *Round) settle(index int) int {
	for range r.Seats {
		if !r.Seats[index].Out {
			break
		}
		index = r.step(index)
	}
	return index
}
