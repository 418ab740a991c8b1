package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resto_web/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	Key              = "userSession"
	MsgConfirmLogout = "Are you sure you want to logout?"
	LabelLogin       = "Login"
)

var ErrMissingFields = errors.New("name and email are required")

// Confirmer pose la question de confirmation avant la déconnexion.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapte une fonction en Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always répond toujours answer, pour une réponse déjà donnée par le client.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(string) bool { return answer })
}

type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

func storeKey(clientID string) string {
	return clientID + ":" + Key
}

// Current retourne la session du navigateur, ou nil s'il n'est pas connecté.
// Un enregistrement illisible est traité comme une absence de session.
func (m *Manager) Current(ctx context.Context, clientID string) (*models.UserSession, error) {
	raw, err := m.store.Get(ctx, storeKey(clientID))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.UserSession
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logrus.Warnf("⚠️ Session illisible pour %s: %v", clientID, err)
		return nil, nil
	}
	return &user, nil
}

// Login enregistre {name, email}. Les deux champs sont obligatoires après trim.
func (m *Manager) Login(ctx context.Context, clientID, name, email string) (*models.UserSession, error) {
	user := models.UserSession{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	if user.Name == "" || user.Email == "" {
		return nil, ErrMissingFields
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := m.store.Set(ctx, storeKey(clientID), string(raw)); err != nil {
		return nil, err
	}
	logrus.WithField("client_id", clientID).Infof("🔑 Connexion de %s", user.Name)
	return &user, nil
}

// Logout supprime la session après confirmation. Retourne true si la session a été supprimée.
func (m *Manager) Logout(ctx context.Context, clientID string, confirm Confirmer) (bool, error) {
	user, err := m.Current(ctx, clientID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if confirm == nil || !confirm.Confirm(MsgConfirmLogout) {
		return false, nil
	}
	if err := m.store.Delete(ctx, storeKey(clientID)); err != nil {
		return false, err
	}
	logrus.WithField("client_id", clientID).Infof("👋 Déconnexion de %s", user.Name)
	return true, nil
}

// Label retourne le libellé du bouton de connexion.
func Label(user *models.UserSession) string {
	if user == nil {
		return LabelLogin
	}
	return fmt.Sprintf("Logout (%s)", user.Name)
}
