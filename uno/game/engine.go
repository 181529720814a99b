package game

import (
	"math/rand"
	"time"

	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/event"
)

// PlayerInfo is what the session manager feeds into Start. Spectators
// are filtered out of the rotation.
type PlayerInfo struct {
	ID        string
	Name      string
	Spectator bool
}

// Engine is the turn state machine. It owns the Round aggregate and is
// its single writer; every operation is one atomic transition that
// leaves the round untouched on error. The caller serializes calls,
// the engine itself holds no lock.
type Engine struct {
	rng   *rand.Rand
	round *Round
}

func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Round exposes the current round. Nil before the first Start.
func (e *Engine) Round() *Round {
	return e.round
}

// Start deals a fresh round: spectators filtered, turn order assigned
// by a uniform random permutation, 7 cards per seat, one card seeding
// the discard pile. A black seed card forces the active color to red.
func (e *Engine) Start(players []PlayerInfo) error {
	actives := make([]PlayerInfo, 0, len(players))
	for _, player := range players {
		if !player.Spectator {
			actives = append(actives, player)
		}
	}
	if len(actives) < consts.MinPlayers {
		return consts.ErrorsNotEnoughPlayers
	}

	deck := NewDeck(e.rng)
	hands, remainder, err := Deal(deck, len(actives))
	if err != nil {
		return err
	}

	seats := make([]*Seat, len(actives))
	for order, permuted := range e.rng.Perm(len(actives)) {
		player := actives[permuted]
		seats[order] = &Seat{
			PlayerID: player.ID,
			Name:     player.Name,
			Hand:     NewHand(hands[order]),
		}
	}

	seed := remainder[len(remainder)-1]
	remainder = remainder[:len(remainder)-1]
	activeColor := seed.Color
	if activeColor == color.Black {
		activeColor = color.Red
	}

	e.round = &Round{
		Seats:         seats,
		CurrentIndex:  0,
		Direction:     1,
		DrawPile:      remainder,
		DiscardPile:   []card.Card{seed},
		ActiveColor:   activeColor,
		Started:       true,
		TurnStartedAt: time.Now(),
		TurnTimeLimit: consts.TurnTimeout,
	}

	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: seed})
	e.emitTurnChanged()
	return nil
}

// ApplyPlay places one card from the current player's hand onto the
// discard pile and applies its effect. Wild-family cards require a
// nominated non-black color in picked; for any other card picked is
// ignored.
func (e *Engine) ApplyPlay(playerID, cardID string, picked color.Color) error {
	round, err := e.playableRound(playerID)
	if err != nil {
		return err
	}
	seat := round.CurrentSeat()
	played, ok := seat.Hand.Get(cardID)
	if !ok {
		return consts.ErrorsCardNotInHand
	}
	if !Playable(played, round.Top(), round.ActiveColor) {
		return consts.ErrorsInvalidPlay
	}
	if played.IsWild() && !pickable(picked) {
		return consts.ErrorsColorRequired
	}

	seat.Hand.Remove(cardID)
	round.DiscardPile = append(round.DiscardPile, played)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerID:   seat.PlayerID,
		PlayerName: seat.Name,
		Card:       played,
	})

	if seat.Hand.Empty() {
		round.WinnerID = seat.PlayerID
		event.RoundFinished.Emit(event.RoundFinishedPayload{
			WinnerID:   seat.PlayerID,
			WinnerName: seat.Name,
		})
		return nil
	}

	if played.IsWild() {
		round.ActiveColor = picked
		event.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerID:   seat.PlayerID,
			PlayerName: seat.Name,
			Color:      picked,
		})
	} else {
		round.ActiveColor = played.Color
	}

	if played.Kind == card.Reverse {
		round.Direction = -round.Direction
	}
	next := round.step(round.CurrentIndex)
	switch played.Kind {
	case card.Skip:
		next = round.step(next)
	case card.DrawTwo:
		e.drawInto(round.Seats[next], 2)
		next = round.step(next)
	case card.WildDrawFour:
		e.drawInto(round.Seats[next], 4)
		next = round.step(next)
	}

	round.CurrentIndex = round.settle(next)
	round.TurnStartedAt = time.Now()
	e.emitTurnChanged()
	return nil
}

// ApplyDraw moves one card from the draw pile into the current
// player's hand and ends their turn. The drawn card is not offered
// back for immediate play.
func (e *Engine) ApplyDraw(playerID string) error {
	round, err := e.playableRound(playerID)
	if err != nil {
		return err
	}
	seat := round.CurrentSeat()
	drawn := e.drawCards(1)
	if len(drawn) == 0 {
		return consts.ErrorsEmptyDrawPile
	}
	seat.Hand.AddCards(drawn)
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerID:   seat.PlayerID,
		PlayerName: seat.Name,
		Amount:     len(drawn),
	})

	round.CurrentIndex = round.settle(round.step(round.CurrentIndex))
	round.TurnStartedAt = time.Now()
	e.emitTurnChanged()
	return nil
}

// OnTurnTimeout forfeits the current player: they are marked out and
// excluded from future turns, but keep their hand and their slot in
// the rotation arithmetic.
func (e *Engine) OnTurnTimeout() error {
	round := e.round
	if round == nil || !round.Started {
		return consts.ErrorsRoundNotStarted
	}
	if round.Finished() {
		return consts.ErrorsRoundFinished
	}
	seat := round.CurrentSeat()
	seat.Out = true
	event.PlayerTimedOut.Emit(event.PlayerTimedOutPayload{
		PlayerID:   seat.PlayerID,
		PlayerName: seat.Name,
	})

	round.CurrentIndex = round.settle(round.step(round.CurrentIndex))
	round.TurnStartedAt = time.Now()
	e.emitTurnChanged()
	return nil
}

func (e *Engine) playableRound(playerID string) (*Round, error) {
	round := e.round
	if round == nil || !round.Started {
		return nil, consts.ErrorsRoundNotStarted
	}
	if round.Finished() {
		return nil, consts.ErrorsRoundFinished
	}
	if round.CurrentSeat().PlayerID != playerID {
		return nil, consts.ErrorsNotYourTurn
	}
	return round, nil
}

// drawCards pops up to amount cards from the end of the draw pile,
// recycling the discard pile (minus its top card) when the pile runs
// short.
func (e *Engine) drawCards(amount int) []card.Card {
	round := e.round
	if len(round.DrawPile) < amount {
		e.recycleDiscardPile()
	}
	if len(round.DrawPile) < amount {
		amount = len(round.DrawPile)
	}
	drawn := make([]card.Card, amount)
	copy(drawn, round.DrawPile[len(round.DrawPile)-amount:])
	round.DrawPile = round.DrawPile[:len(round.DrawPile)-amount]
	return drawn
}

func (e *Engine) recycleDiscardPile() {
	round := e.round
	if len(round.DiscardPile) < 2 {
		return
	}
	top := round.Top()
	recycled := make([]card.Card, len(round.DiscardPile)-1)
	copy(recycled, round.DiscardPile[:len(round.DiscardPile)-1])
	shuffleCards(e.rng, recycled)
	round.DrawPile = append(recycled, round.DrawPile...)
	round.DiscardPile = []card.Card{top}
}

func (e *Engine) drawInto(seat *Seat, amount int) {
	drawn := e.drawCards(amount)
	if len(drawn) == 0 {
		return
	}
	seat.Hand.AddCards(drawn)
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerID:   seat.PlayerID,
		PlayerName: seat.Name,
		Amount:     len(drawn),
	})
}

func (e *Engine) emitTurnChanged() {
	seat := e.round.CurrentSeat()
	event.TurnChanged.Emit(event.TurnChangedPayload{
		PlayerID:   seat.PlayerID,
		PlayerName: seat.Name,
		Deadline:   e.round.TurnStartedAt.Add(e.round.TurnTimeLimit),
	})
}

func pickable(picked color.Color) bool {
	for _, candidate := range color.Picks {
		if picked == candidate {
			return true
		}
	}
	return false
}
