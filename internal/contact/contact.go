// Package contact valide le formulaire de contact et l'envoie en une seule tentative.
package contact

import (
	"context"
	"regexp"
	"strings"

	"resto_web/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	MsgMissingFields = "Please fill out all fields."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgSent          = "Your message has been sent successfully!"
	MsgSendFailed    = "An error occurred. Please try again later."
)

var (
	ErrMissingFields = errors.New("missing contact fields")
	ErrInvalidEmail  = errors.New("invalid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Transport livre un message de contact. Une erreur signifie l'échec de l'unique tentative.
type Transport interface {
	Send(ctx context.Context, msg models.ContactMessage) error
}

type Service struct {
	transport Transport
}

func NewService(t Transport) *Service {
	return &Service{transport: t}
}

// ValidEmail applique la vérification de forme minimale (x@y.z, sans espaces).
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate nettoie le message et vérifie les champs obligatoires puis l'email.
func Validate(msg models.ContactMessage) (models.ContactMessage, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return msg, ErrMissingFields
	}
	if !ValidEmail(msg.Email) {
		return msg, ErrInvalidEmail
	}
	return msg, nil
}

// Submit valide puis envoie le message. Le retour est toujours un Feedback à
// afficher ; l'erreur n'est renseignée que pour la journalisation et les statuts HTTP.
func (s *Service) Submit(ctx context.Context, msg models.ContactMessage) (models.Feedback, error) {
	clean, err := Validate(msg)
	switch {
	case errors.Is(err, ErrMissingFields):
		return models.Feedback{Type: models.FeedbackDanger, Message: MsgMissingFields}, err
	case errors.Is(err, ErrInvalidEmail):
		return models.Feedback{Type: models.FeedbackDanger, Message: MsgInvalidEmail}, err
	}

	if err := s.transport.Send(ctx, clean); err != nil {
		logrus.WithField("email", clean.Email).Errorf("❌ Envoi du message de contact échoué: %v", err)
		return models.Feedback{Type: models.FeedbackDanger, Message: MsgSendFailed}, err
	}

	logrus.WithField("email", clean.Email).Info("📨 Message de contact envoyé")
	return models.Feedback{Type: models.FeedbackSuccess, Message: MsgSent}, nil
}
