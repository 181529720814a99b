package event

var PlayerTimedOut = &playerTimedOutEmitter{}

type PlayerTimedOutPayload struct {
	PlayerID   string
	PlayerName string
}

type PlayerTimedOutListener interface {
	OnPlayerTimedOut(PlayerTimedOutPayload)
}

type playerTimedOutEmitter struct {
	listeners []PlayerTimedOutListener
}

func (e *playerTimedOutEmitter) AddListener(listener PlayerTimedOutListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerTimedOutEmitter) Emit(payload PlayerTimedOutPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerTimedOut(payload)
	}
}
