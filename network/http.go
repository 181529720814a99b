package network

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/database"
	"github.com/uno-online/server/model"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type HTTPServer struct {
	addr  string
	store *database.IdentityStore
}

func NewHTTPServer(addr string, store *database.IdentityStore) HTTPServer {
	return HTTPServer{addr: addr, store: store}
}

func (s HTTPServer) Serve() error {
	http.HandleFunc("/ws", s.serveWs)
	log.Infof("Websocket server listening on %s\n", s.addr)
	return http.ListenAndServe(s.addr, nil)
}

func (s HTTPServer) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	if err := s.handle(conn, r.URL.Query().Get("device")); err != nil {
		log.Error(err)
	}
}

func (s HTTPServer) handle(conn *websocket.Conn, deviceID string) error {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error(err)
		}
	}()
	log.Infof("new player connected, device %s\n", deviceID)

	identity, err := s.loginAuth(conn, deviceID)
	if err != nil {
		return err
	}
	log.Infof("player auth accessed, %s:%s\n", identity.ID, identity.Name)

	session := database.GetSession()
	player, send := session.Join(identity)
	defer session.Leave(player.ID, send)

	async.Async(func() {
		writePump(conn, send)
	})
	player.WriteEvent(model.Event{Type: consts.EventIdentity, Data: identity})

	return s.listening(conn, session, player)
}

// loginAuth resolves the device identity: the first packet must be a
// join command; an unknown device with a name creates a fresh identity.
func (s HTTPServer) loginAuth(conn *websocket.Conn, deviceID string) (database.Identity, error) {
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	defer conn.SetReadDeadline(time.Time{})

	_, data, err := conn.ReadMessage()
	if err != nil {
		return database.Identity{}, consts.ErrorsAuthFail
	}
	cmd := model.Command{}
	if err := jsoniter.Unmarshal(data, &cmd); err != nil || cmd.Type != consts.CmdJoin {
		return database.Identity{}, consts.ErrorsAuthFail
	}
	if identity, ok := s.store.Lookup(deviceID); ok {
		return identity, nil
	}
	if cmd.Name == "" {
		return database.Identity{}, consts.ErrorsAuthFail
	}
	return s.store.Login(deviceID, cmd.Name), nil
}

func (s HTTPServer) listening(conn *websocket.Conn, session *database.Session, player *database.Player) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		cmd := model.Command{}
		if err := jsoniter.Unmarshal(data, &cmd); err != nil {
			player.WriteError(consts.ErrorsInputInvalid)
			continue
		}
		if err := dispatch(session, player, cmd); err != nil {
			player.WriteError(err)
		}
	}
}

func dispatch(session *database.Session, player *database.Player, cmd model.Command) error {
	switch cmd.Type {
	case consts.CmdReady:
		return session.SetReady(player.ID, cmd.Ready)
	case consts.CmdStart:
		return session.StartRound(player.ID)
	case consts.CmdPlay:
		return session.Play(player.ID, cmd.CardID, cmd.Color)
	case consts.CmdDraw:
		return session.Draw(player.ID)
	case consts.CmdChooseColor:
		return session.ChooseColor(player.ID, cmd.Color)
	case consts.CmdEmoji:
		return session.SendEmoji(player.ID, cmd.Emoji)
	case consts.CmdState:
		player.WriteEvent(model.Event{Type: consts.EventState, Data: session.Snapshot(player.ID)})
		return nil
	case consts.CmdJoin:
		return nil
	default:
		return consts.ErrorsInputInvalid
	}
}

func writePump(conn *websocket.Conn, send chan []byte) {
	for data := range send {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Error(err)
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
