package handlers

import (
	"net/http"

	"resto_web/internal/contact"
	"resto_web/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// 📨 POST /api/contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var input models.ContactMessage
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"feedback": models.Feedback{
			Type: models.FeedbackDanger, Message: contact.MsgMissingFields,
		}})
		return
	}

	feedback, err := h.Contact.Submit(c.Request.Context(), input)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"feedback": feedback})
	case errors.Is(err, contact.ErrMissingFields), errors.Is(err, contact.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"feedback": feedback})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"feedback": feedback})
	}
}
