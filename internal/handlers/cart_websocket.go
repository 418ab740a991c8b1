package handlers

import (
	"context"
	"net/http"

	"resto_web/internal/render"
	"resto_web/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket branche un sink websocket sur le panier de la vue : chaque rendu est
// poussé au client, et les boutons « supprimer » reviennent par la même connexion.
func (h *Handler) CartWebSocket(c *gin.Context) {
	viewID := c.GetString("view_id")
	release, err := h.Views.Hold(viewID)
	if err != nil {
		viewError(c, err)
		return
	}
	defer release()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.Errorf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}

	sink := render.NewWebsocketSink(conn)
	defer sink.Close()

	var detach func()
	if err := h.Views.With(viewID, func(v *views.View) { detach = v.Cart.Attach(sink) }); err != nil {
		sink.Fail(msgViewExpired)
		return
	}
	defer func() {
		_ = h.Views.With(viewID, func(*views.View) { detach() })
	}()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	err = sink.Listen(ctx, func(name string) {
		err := h.Views.With(viewID, func(v *views.View) { v.Cart.RemoveItem(name) })
		if err != nil {
			logrus.Warnf("⚠️ Suppression via WebSocket impossible: %v", err)
			sink.Fail(msgViewExpired)
			cancel()
		}
	})
	if err != nil {
		logrus.Debugf("🔌 WebSocket panier fermé: %v", err)
	}
}
