package event

var RoundFinished = &roundFinishedEmitter{}

type RoundFinishedPayload struct {
	WinnerID   string
	WinnerName string
}

type RoundFinishedListener interface {
	OnRoundFinished(RoundFinishedPayload)
}

type roundFinishedEmitter struct {
	listeners []RoundFinishedListener
}

func (e *roundFinishedEmitter) AddListener(listener RoundFinishedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundFinishedEmitter) Emit(payload RoundFinishedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundFinished(payload)
	}
}
