package consts

import "time"

const (
	MinPlayers = 2
	MaxPlayers = 10
	HandSize   = 7

	TurnTimeout = 60 * time.Second

	SessionStateWaiting = 1
	SessionStateRunning = 2
)

// Inbound command types.
const (
	CmdJoin        = "join"
	CmdReady       = "ready"
	CmdStart       = "start"
	CmdPlay        = "play"
	CmdDraw        = "draw"
	CmdChooseColor = "choose_color"
	CmdEmoji       = "emoji"
	CmdState       = "state"
)

// Outbound event types.
const (
	EventState       = "state"
	EventIdentity    = "identity"
	EventToast       = "toast"
	EventEmoji       = "emoji"
	EventPlayerOut   = "player_out"
	EventRoundOver   = "round_over"
	EventColorWanted = "color_wanted"
	EventError       = "error"
)

var SessionStates = map[int]string{
	SessionStateWaiting: "Waiting",
	SessionStateRunning: "Running",
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Msg: msg, Exit: exit}
}

var (
	ErrorsAuthFail          = NewErr(1, true, "Auth fail. ")
	ErrorsInputInvalid      = NewErr(1, false, "Input invalid. ")
	ErrorsNotYourTurn       = NewErr(2, false, "Not your turn. ")
	ErrorsInvalidPlay       = NewErr(3, false, "This card cannot be played now. ")
	ErrorsNotEnoughPlayers  = NewErr(4, false, "Need at least 2 players to start. ")
	ErrorsInsufficientCards = NewErr(5, false, "Not enough cards to deal. ")
	ErrorsEmptyDrawPile     = NewErr(6, false, "Draw pile is empty. ")
	ErrorsRoundFinished     = NewErr(7, false, "Round is already finished. ")
	ErrorsRoundNotStarted   = NewErr(7, false, "Round has not started. ")
	ErrorsRoundRunning      = NewErr(8, false, "Round is already running. ")
	ErrorsColorRequired     = NewErr(9, false, "Pick a color for the wild card. ")
	ErrorsCardNotInHand     = NewErr(10, false, "Card is not in your hand. ")
	ErrorsUnknownPlayer     = NewErr(11, false, "Unknown player. ")
)
