package database

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/model"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/event"
	"github.com/uno-online/server/uno/game"
	"github.com/uno-online/server/uno/msg"
)

// pendingWild tracks a wild-family card played before its color was
// nominated; ChooseColor completes it as one engine transition.
type pendingWild struct {
	playerID string
	cardID   string
}

// Session is the single shared game session: lobby, turn timer and the
// engine owner. Every engine call runs under the session mutex, so
// start/play/draw/timeout never interleave.
type Session struct {
	sync.Mutex

	state    int
	players  []*Player
	engine   *game.Engine
	pending  *pendingWild
	timer    *time.Timer
	timerSeq int
}

var (
	session     *Session
	sessionOnce sync.Once
)

func GetSession() *Session {
	sessionOnce.Do(func() {
		session = NewSession()
	})
	return session
}

func NewSession() *Session {
	s := &Session{
		state:  consts.SessionStateWaiting,
		engine: game.NewEngine(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	event.FirstCardPlayed.AddListener(s)
	event.CardPlayed.AddListener(s)
	event.CardsDrawn.AddListener(s)
	event.ColorPicked.AddListener(s)
	event.TurnChanged.AddListener(s)
	event.PlayerTimedOut.AddListener(s)
	event.RoundFinished.AddListener(s)
	return s
}

// Join connects an identity to the session. Joining while a round is
// running, or beyond the player cap, makes the player a spectator.
// Rejoining with a known id reattaches the existing player.
func (s *Session) Join(identity Identity) (*Player, chan []byte) {
	s.Lock()
	defer s.Unlock()
	for _, player := range s.players {
		if player.ID == identity.ID {
			player.Name = identity.Name
			player.Offline()
			send := player.Connect()
			s.broadcastState()
			return player, send
		}
	}
	player := NewPlayer(identity.ID, identity.Name, identity.DeviceID)
	if s.state == consts.SessionStateRunning || s.activeCount() >= consts.MaxPlayers {
		player.Spectator = true
	}
	send := player.Connect()
	s.players = append(s.players, player)
	s.broadcastToast(msg.Message.PlayerJoined(player.Name, player.Spectator))
	s.broadcastState()
	return player, send
}

// Leave detaches a player. In the lobby the player is removed; during
// a round the seat stays and runs down its turn clock. A disconnect
// that was already superseded by a reconnect is ignored.
func (s *Session) Leave(playerID string, send chan []byte) {
	s.Lock()
	defer s.Unlock()
	for index, player := range s.players {
		if player.ID != playerID {
			continue
		}
		if player.send != send {
			return
		}
		player.Offline()
		if s.state == consts.SessionStateWaiting {
			s.players = append(s.players[:index], s.players[index+1:]...)
		}
		s.broadcastToast(msg.Message.PlayerLeft(player.Name))
		s.broadcastState()
		return
	}
}

func (s *Session) SetReady(playerID string, ready bool) error {
	s.Lock()
	defer s.Unlock()
	player := s.player(playerID)
	if player == nil {
		return consts.ErrorsUnknownPlayer
	}
	if s.state != consts.SessionStateWaiting || player.Spectator {
		return consts.ErrorsInputInvalid
	}
	player.Ready = ready
	s.broadcastToast(msg.Message.PlayerReady(player.Name, ready))
	s.broadcastState()
	return nil
}

// StartRound starts a round when at least two active players are
// ready. All non-spectator players take part.
func (s *Session) StartRound(playerID string) error {
	s.Lock()
	defer s.Unlock()
	if s.state != consts.SessionStateWaiting {
		return consts.ErrorsRoundRunning
	}
	ready := 0
	infos := make([]game.PlayerInfo, 0, len(s.players))
	for _, player := range s.players {
		if !player.Spectator && player.Ready {
			ready++
		}
		infos = append(infos, game.PlayerInfo{
			ID:        player.ID,
			Name:      player.Name,
			Spectator: player.Spectator,
		})
	}
	if ready < consts.MinPlayers {
		return consts.ErrorsNotEnoughPlayers
	}
	s.state = consts.SessionStateRunning
	if err := s.engine.Start(infos); err != nil {
		s.state = consts.SessionStateWaiting
		return err
	}
	log.Infof("round started with %d players\n", len(infos))
	s.afterTransition()
	return nil
}

// Play places a card. A wild-family card played without a color is
// parked until ChooseColor supplies one; the engine transition itself
// stays atomic.
func (s *Session) Play(playerID, cardID, colorName string) error {
	s.Lock()
	defer s.Unlock()
	if colorName == "" && s.wildInCurrentHand(playerID, cardID) {
		s.pending = &pendingWild{playerID: playerID, cardID: cardID}
		if player := s.player(playerID); player != nil {
			player.WriteEvent(model.Event{
				Type: consts.EventColorWanted,
				Data: model.ColorWanted{CardID: cardID},
			})
		}
		return nil
	}
	picked, err := parseColor(colorName)
	if err != nil {
		return err
	}
	if err := s.engine.ApplyPlay(playerID, cardID, picked); err != nil {
		return err
	}
	s.afterTransition()
	return nil
}

// ChooseColor resolves a pending wild play.
func (s *Session) ChooseColor(playerID, colorName string) error {
	s.Lock()
	defer s.Unlock()
	if s.pending == nil || s.pending.playerID != playerID {
		return consts.ErrorsInputInvalid
	}
	picked, err := parseColor(colorName)
	if err != nil {
		return err
	}
	cardID := s.pending.cardID
	if err := s.engine.ApplyPlay(playerID, cardID, picked); err != nil {
		return err
	}
	s.afterTransition()
	return nil
}

func (s *Session) Draw(playerID string) error {
	s.Lock()
	defer s.Unlock()
	if err := s.engine.ApplyDraw(playerID); err != nil {
		return err
	}
	s.afterTransition()
	return nil
}

func (s *Session) SendEmoji(playerID, emoji string) error {
	s.Lock()
	defer s.Unlock()
	player := s.player(playerID)
	if player == nil {
		return consts.ErrorsUnknownPlayer
	}
	log.Infof("%s", msg.Message.PlayerSentEmoji(player.Name, emoji))
	s.broadcastEvent(model.Event{Type: consts.EventEmoji, Data: model.Emoji{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Emoji:      emoji,
	}})
	return nil
}

// Snapshot builds the personalized state view for one player.
func (s *Session) Snapshot(playerID string) model.Snapshot {
	s.Lock()
	defer s.Unlock()
	return s.snapshot(playerID)
}

func (s *Session) player(playerID string) *Player {
	for _, player := range s.players {
		if player.ID == playerID {
			return player
		}
	}
	return nil
}

func (s *Session) activeCount() int {
	count := 0
	for _, player := range s.players {
		if !player.Spectator {
			count++
		}
	}
	return count
}

func (s *Session) wildInCurrentHand(playerID, cardID string) bool {
	round := s.engine.Round()
	if round == nil || !round.Started || round.Finished() {
		return false
	}
	seat := round.CurrentSeat()
	if seat.PlayerID != playerID {
		return false
	}
	inHand, ok := seat.Hand.Get(cardID)
	return ok && inHand.IsWild()
}

// afterTransition runs with the lock held after every accepted engine
// transition: push state to everyone and rearm the turn timer.
func (s *Session) afterTransition() {
	s.pending = nil
	s.broadcastState()
	s.scheduleTimeout()
}

// scheduleTimeout replaces the turn deadline timer. Rearming bumps the
// sequence so a stale fire is ignored; finishing the round cancels the
// pending timer entirely.
func (s *Session) scheduleTimeout() {
	s.timerSeq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	round := s.engine.Round()
	if s.state != consts.SessionStateRunning || round == nil || round.Finished() {
		return
	}
	seq := s.timerSeq
	remaining := round.TurnTimeLimit - time.Since(round.TurnStartedAt)
	s.timer = time.AfterFunc(remaining, func() {
		s.fireTimeout(seq)
	})
}

func (s *Session) fireTimeout(seq int) {
	s.Lock()
	defer s.Unlock()
	if seq != s.timerSeq || s.state != consts.SessionStateRunning {
		return
	}
	if err := s.engine.OnTurnTimeout(); err != nil {
		log.Error(err)
		return
	}
	s.afterTransition()
}

// finishRound returns the session to the lobby. Ready flags reset and
// spectators become eligible for the next round.
func (s *Session) finishRound() {
	s.state = consts.SessionStateWaiting
	for _, player := range s.players {
		player.Ready = false
		player.Spectator = false
	}
}

func (s *Session) snapshot(playerID string) model.Snapshot {
	snapshot := model.Snapshot{
		State:   consts.SessionStates[s.state],
		Players: make([]model.PlayerView, 0, len(s.players)),
	}
	round := s.engine.Round()
	inRound := s.state == consts.SessionStateRunning && round != nil
	for _, player := range s.players {
		view := model.PlayerView{
			ID:          player.ID,
			Name:        player.Name,
			IsReady:     player.Ready,
			IsSpectator: player.Spectator,
		}
		if inRound {
			if seat := round.Seat(player.ID); seat != nil {
				view.CardCount = seat.Hand.Size()
				view.IsOut = seat.Out
				view.IsCurrentTurn = !round.Finished() && round.CurrentSeat() == seat
				if player.ID == playerID {
					snapshot.Hand = seat.Hand.Cards()
				}
			}
		}
		snapshot.Players = append(snapshot.Players, view)
	}
	if inRound {
		top := round.Top()
		deadline := round.TurnStartedAt.Add(round.TurnTimeLimit)
		snapshot.CurrentPlayer = round.CurrentSeat().PlayerID
		snapshot.Direction = round.Direction
		snapshot.ActiveColor = round.ActiveColor.Name()
		snapshot.TopCard = &top
		snapshot.DrawPileSize = len(round.DrawPile)
		snapshot.WinnerID = round.WinnerID
		if !round.Finished() {
			snapshot.TurnDeadline = &deadline
		}
	}
	return snapshot
}

func (s *Session) broadcastState() {
	for _, player := range s.players {
		player.WriteEvent(model.Event{Type: consts.EventState, Data: s.snapshot(player.ID)})
	}
}

func (s *Session) broadcastToast(text string) {
	s.broadcastEvent(model.Event{Type: consts.EventToast, Data: model.Toast{Text: text}})
}

func (s *Session) broadcastEvent(ev model.Event) {
	for _, player := range s.players {
		player.WriteEvent(ev)
	}
}

func parseColor(colorName string) (color.Color, error) {
	if colorName == "" {
		return 0, nil
	}
	picked, err := color.ByName(colorName)
	if err != nil {
		return 0, consts.ErrorsColorRequired
	}
	return picked, nil
}

// Event listeners below run inside engine transitions, with the
// session lock already held.

func (s *Session) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	log.Infof("first card %s\n", payload.Card)
	s.broadcastToast(msg.Message.FirstCardPlayed(payload.Card))
}

func (s *Session) OnCardPlayed(payload event.CardPlayedPayload) {
	log.Infof("%s played %s\n", payload.PlayerName, payload.Card)
	s.broadcastToast(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (s *Session) OnCardsDrawn(payload event.CardsDrawnPayload) {
	s.broadcastToast(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Amount))
}

func (s *Session) OnColorPicked(payload event.ColorPickedPayload) {
	s.broadcastToast(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (s *Session) OnTurnChanged(payload event.TurnChangedPayload) {
	s.broadcastToast(msg.Message.PlayerTurnStarted(payload.PlayerName))
}

func (s *Session) OnPlayerTimedOut(payload event.PlayerTimedOutPayload) {
	log.Infof("%s timed out\n", payload.PlayerName)
	s.broadcastToast(msg.Message.PlayerTimedOut(payload.PlayerName))
	s.broadcastEvent(model.Event{Type: consts.EventPlayerOut, Data: model.PlayerOut{
		PlayerID:   payload.PlayerID,
		PlayerName: payload.PlayerName,
	}})
}

func (s *Session) OnRoundFinished(payload event.RoundFinishedPayload) {
	log.Infof("%s won the round\n", payload.WinnerName)
	s.broadcastToast(msg.Message.PlayerWon(payload.WinnerName))
	s.broadcastEvent(model.Event{Type: consts.EventRoundOver, Data: model.RoundOver{
		WinnerID:   payload.WinnerID,
		WinnerName: payload.WinnerName,
	}})
	s.finishRound()
}
