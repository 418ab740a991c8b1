package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ViewRequired vérifie le jeton de vue (header Bearer, ou ?token= pour les websockets)
// et place view_id dans le contexte Gin.
func ViewRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Format Authorization invalide"})
				return
			}
			tokenString = parts[1]
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Jeton de vue manquant"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			logrus.Debugf("❌ Jeton de vue refusé: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Jeton de vue invalide"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Jeton de vue invalide"})
			return
		}
		viewID, ok := claims["view_id"].(string)
		if !ok || viewID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "view_id manquant"})
			return
		}

		c.Set("view_id", viewID)
		c.Next()
	}
}
