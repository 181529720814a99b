package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/event"
)

func TestTurnChanged(t *testing.T) {
	listener := event.NewDummyListener()
	event.TurnChanged.AddListener(listener)

	deadline := time.Now().Add(time.Minute)
	payload := event.TurnChangedPayload{
		PlayerID:   "p1",
		PlayerName: "Someone",
		Deadline:   deadline,
	}
	event.TurnChanged.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}
