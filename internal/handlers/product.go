package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 🟢 GET /api/menu
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Catalog.Items()})
}
