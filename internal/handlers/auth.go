package handlers

import (
	"net/http"

	"resto_web/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// 🟢 GET /api/session
func (h *Handler) GetSession(c *gin.Context) {
	user, err := h.Sessions.Current(c.Request.Context(), c.GetString("client_id"))
	if err != nil {
		logrus.Errorf("❌ Erreur lecture session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "label": session.Label(user)})
}

// 🔑 POST /api/session/login
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	user, err := h.Sessions.Login(c.Request.Context(), c.GetString("client_id"), input.Name, input.Email)
	if errors.Is(err, session.ErrMissingFields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom et email requis"})
		return
	}
	if err != nil {
		logrus.Errorf("❌ Erreur enregistrement session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "label": session.Label(user)})
}

// 👋 POST /api/session/logout: {"confirm": true} requis
func (h *Handler) Logout(c *gin.Context) {
	var input confirmInput
	if err := bindOptionalJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	clientID := c.GetString("client_id")
	loggedOut, err := h.Sessions.Logout(ctx, clientID, session.Always(input.Confirm))
	if err != nil {
		logrus.Errorf("❌ Erreur déconnexion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur déconnexion"})
		return
	}

	user, err := h.Sessions.Current(ctx, clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logged_out": loggedOut, "user": user, "label": session.Label(user)})
}
