package handlers

import (
	"net/http"

	"resto_web/internal/cart"
	"resto_web/internal/models"
	"resto_web/internal/utils"
	"resto_web/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// 🟢 POST /api/views: un chargement de page ouvre une vue avec un panier vide
func (h *Handler) OpenView(c *gin.Context) {
	v := h.Views.Open()

	token, err := utils.GenerateViewToken(h.JWTSecret, v.ID)
	if err != nil {
		h.Views.Close(v.ID)
		logrus.Errorf("❌ Erreur signature jeton de vue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création de la vue"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"view_id": v.ID,
		"token":   token,
		"cart":    v.Cart.Snapshot(),
	})
}

// 🟢 GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	var snap models.Snapshot
	err := h.Views.With(c.GetString("view_id"), func(v *views.View) {
		snap = v.Cart.Snapshot()
	})
	if err != nil {
		viewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": snap})
}

// 🟢 GET /api/cart/html
func (h *Handler) GetCartHTML(c *gin.Context) {
	var html []byte
	err := h.Views.With(c.GetString("view_id"), func(v *views.View) {
		html = v.HTML.HTML()
	})
	if err != nil {
		viewError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// 🟢 POST /api/cart/items
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	item, err := h.Catalog.Lookup(input.Name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plat introuvable", "name": input.Name})
		return
	}

	var snap models.Snapshot
	err = h.Views.With(c.GetString("view_id"), func(v *views.View) {
		v.Cart.AddItem(item.Name, item.Price)
		snap = v.Cart.Snapshot()
	})
	if err != nil {
		viewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": snap})
}

// ❌ DELETE /api/cart/items/:name
func (h *Handler) RemoveFromCart(c *gin.Context) {
	name := c.Param("name")

	var snap models.Snapshot
	err := h.Views.With(c.GetString("view_id"), func(v *views.View) {
		v.Cart.RemoveItem(name)
		snap = v.Cart.Snapshot()
	})
	if err != nil {
		viewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": snap})
}

// 🧹 POST /api/cart/clear: {"confirm": true} vaut réponse « OK » à la confirmation
func (h *Handler) ClearCart(c *gin.Context) {
	var input confirmInput
	if err := bindOptionalJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	var (
		outcome cart.ClearOutcome
		notices = []string{}
		snap    models.Snapshot
	)
	err := h.Views.With(c.GetString("view_id"), func(v *views.View) {
		v.Cart.SetNotifier(cart.NotifyFunc(func(msg string) { notices = append(notices, msg) }))
		defer v.Cart.SetNotifier(nil)

		outcome = v.Cart.Clear(cart.Always(input.Confirm))
		snap = v.Cart.Snapshot()
	})
	if err != nil {
		viewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome.String(),
		"notices": notices,
		"cart":    snap,
	})
}

const msgViewExpired = "Vue expirée, rechargez la page"

func viewError(c *gin.Context, err error) {
	if errors.Is(err, views.ErrViewNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgViewExpired})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
