package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateViewToken signe un jeton HS256 qui prouve la possession d'une vue.
// Pas d'exp : la vue vit tant que le registre la garde.
func GenerateViewToken(secret []byte, viewID string) (string, error) {
	claims := jwt.MapClaims{
		"view_id": viewID,
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
