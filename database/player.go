package database

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/model"
)

// Player is one connected browser. Writes go through a buffered send
// channel drained by the network write pump.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DeviceID  string `json:"deviceId"`
	Spectator bool   `json:"spectator"`
	Ready     bool   `json:"ready"`

	online bool
	send   chan []byte
}

func NewPlayer(id, name, deviceID string) *Player {
	return &Player{ID: id, Name: name, DeviceID: deviceID}
}

func (p *Player) Connect() chan []byte {
	p.send = make(chan []byte, 16)
	p.online = true
	return p.send
}

func (p *Player) Online() bool {
	return p.online
}

func (p *Player) Offline() {
	if !p.online {
		return
	}
	p.online = false
	close(p.send)
}

// WriteEvent queues an event for the write pump. Slow consumers are
// dropped rather than blocking a transition.
func (p *Player) WriteEvent(ev model.Event) {
	if !p.online {
		return
	}
	select {
	case p.send <- json.Marshal(ev):
	default:
		log.Infof("player %s send buffer full, dropping %s\n", p.ID, ev.Type)
	}
}

func (p *Player) WriteError(err error) {
	p.WriteEvent(model.Event{Type: consts.EventError, Data: model.Toast{Text: err.Error()}})
}

func (p Player) String() string {
	return fmt.Sprintf("%s[%s]", p.Name, p.ID)
}
