package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const clientCookie = "resto_client"

// ClientIdentity attribue à chaque navigateur un client_id durable stocké dans un
// cookie signé, et le place dans le contexte Gin.
func ClientIdentity(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Un cookie illisible donne une session neuve : on repart d'un nouvel identifiant.
		sess, _ := store.Get(c.Request, clientCookie)

		clientID, _ := sess.Values["client_id"].(string)
		if clientID == "" {
			clientID = uuid.NewString()
			sess.Values["client_id"] = clientID
			if err := sess.Save(c.Request, c.Writer); err != nil {
				logrus.Warnf("⚠️ Impossible d'enregistrer le cookie client: %v", err)
			}
		}

		c.Set("client_id", clientID)
		c.Next()
	}
}
