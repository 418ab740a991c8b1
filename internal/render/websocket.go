package render

import (
	"context"
	"sync"
	"time"

	"resto_web/internal/models"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = 5 * time.Second

type cartMessage struct {
	Type  string           `json:"type"`
	Cart  *models.Snapshot `json:"cart,omitempty"`
	Error string           `json:"error,omitempty"`
}

// ClientAction est une commande envoyée par le navigateur, ex. {"action":"remove","name":"Tiramisu"}.
type ClientAction struct {
	Action string `json:"action"`
	Name   string `json:"name"`
}

// WebsocketSink pousse chaque projection du panier vers une connexion websocket
// et relaie les demandes de suppression du client.
type WebsocketSink struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	closed bool
}

func NewWebsocketSink(conn *websocket.Conn) *WebsocketSink {
	return &WebsocketSink{conn: conn}
}

func (s *WebsocketSink) Render(snap models.Snapshot) {
	s.write(cartMessage{Type: "cart", Cart: &snap})
}

func (s *WebsocketSink) write(msg cartMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		logrus.Warnf("⚠️ Envoi websocket impossible, sink fermé: %v", err)
		s.closed = true
	}
}

// Fail envoie une trame d'erreur au client.
func (s *WebsocketSink) Fail(msg string) {
	s.write(cartMessage{Type: "error", Error: msg})
}

// Listen lit les actions du client jusqu'à la fermeture de la connexion ou du
// contexte. Chaque {"action":"remove"} est transmis à remove.
func (s *WebsocketSink) Listen(ctx context.Context, remove func(name string)) error {
	go func() {
		<-ctx.Done()
		s.Close()
	}()

	for {
		var action ClientAction
		if err := s.conn.ReadJSON(&action); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		switch action.Action {
		case "remove":
			remove(action.Name)
		default:
			s.Fail("action inconnue: " + action.Action)
		}
	}
}

// Close ferme la connexion ; les rendus suivants sont ignorés.
func (s *WebsocketSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	s.conn.Close()
}
