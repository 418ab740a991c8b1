package handlers

import (
	"errors"
	"io"
	"net/http"

	"resto_web/internal/catalog"
	"resto_web/internal/contact"
	"resto_web/internal/session"
	"resto_web/internal/views"

	"github.com/gin-gonic/gin"
)

// Handler regroupe les dépendances des routes HTTP.
type Handler struct {
	Views     *views.Registry
	Catalog   *catalog.Catalog
	Contact   *contact.Service
	Sessions  *session.Manager
	JWTSecret []byte
}

type confirmInput struct {
	Confirm bool `json:"confirm"`
}

// bindOptionalJSON accepte un corps vide.
func bindOptionalJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
