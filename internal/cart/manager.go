// Package cart contient le gestionnaire de panier d'une vue de page.
package cart

import (
	"resto_web/internal/models"

	"github.com/shopspring/decimal"
)

const (
	MsgAlreadyEmpty = "Cart is already empty."
	MsgConfirmClear = "Are you sure you want to clear your cart?"
)

// Sink reçoit la projection complète du panier après chaque mutation.
type Sink interface {
	Render(models.Snapshot)
}

// Notifier affiche un message à l'utilisateur (équivalent d'une alerte).
type Notifier interface {
	Notify(msg string)
}

// Confirmer pose une question bloquante à l'utilisateur.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapte une fonction en Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always retourne un Confirmer qui répond toujours answer.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(string) bool { return answer })
}

// NotifyFunc adapte une fonction en Notifier.
type NotifyFunc func(msg string)

func (f NotifyFunc) Notify(msg string) { f(msg) }

// ClearOutcome dit ce que Clear a fait du panier.
type ClearOutcome int

const (
	Cleared ClearOutcome = iota
	AlreadyEmpty
	Declined
)

func (o ClearOutcome) String() string {
	switch o {
	case Cleared:
		return "cleared"
	case AlreadyEmpty:
		return "already_empty"
	case Declined:
		return "declined"
	}
	return "unknown"
}

// Manager possède le panier d'une vue. Il n'est pas sûr pour un usage concurrent :
// l'appelant sérialise les mutations (voir views.Registry).
type Manager struct {
	lines    map[string]*models.CartLine
	order    []string // ordre du premier ajout
	sinks    []Sink
	notifier Notifier
	snapshot models.Snapshot
}

func NewManager(sinks ...Sink) *Manager {
	m := &Manager{
		lines:    make(map[string]*models.CartLine),
		sinks:    append([]Sink(nil), sinks...),
		snapshot: emptySnapshot(),
	}
	return m
}

// SetNotifier remplace la cible des messages utilisateur.
func (m *Manager) SetNotifier(n Notifier) {
	m.notifier = n
}

// Attach ajoute un sink et lui pousse immédiatement l'état courant.
// La fonction retournée détache le sink.
func (m *Manager) Attach(s Sink) (detach func()) {
	m.sinks = append(m.sinks, s)
	s.Render(m.snapshot)
	return func() {
		for i, existing := range m.sinks {
			if existing == s {
				m.sinks = append(m.sinks[:i], m.sinks[i+1:]...)
				return
			}
		}
	}
}

// AddItem incrémente la quantité si name est déjà présent (le prix stocké est conservé),
// sinon insère une ligne de quantité 1.
func (m *Manager) AddItem(name string, price decimal.Decimal) {
	if line, ok := m.lines[name]; ok {
		line.Quantity++
	} else {
		m.lines[name] = &models.CartLine{Name: name, UnitPrice: price, Quantity: 1}
		m.order = append(m.order, name)
	}
	m.render()
}

// RemoveItem supprime la ligne si elle existe ; sinon ne fait rien.
func (m *Manager) RemoveItem(name string) {
	if _, ok := m.lines[name]; ok {
		delete(m.lines, name)
		for i, n := range m.order {
			if n == name {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
	m.render()
}

// Clear vide le panier après confirmation. Un panier déjà vide produit une
// notification et aucun changement.
func (m *Manager) Clear(confirm Confirmer) ClearOutcome {
	if len(m.lines) == 0 {
		m.notify(MsgAlreadyEmpty)
		return AlreadyEmpty
	}
	if confirm == nil || !confirm.Confirm(MsgConfirmClear) {
		return Declined
	}
	m.lines = make(map[string]*models.CartLine)
	m.order = nil
	m.render()
	return Cleared
}

func (m *Manager) Len() int {
	return len(m.lines)
}

// Lines retourne une copie des lignes dans l'ordre d'insertion.
func (m *Manager) Lines() []models.CartLine {
	out := make([]models.CartLine, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, *m.lines[name])
	}
	return out
}

// Snapshot retourne le dernier rendu.
func (m *Manager) Snapshot() models.Snapshot {
	return m.snapshot
}

func (m *Manager) notify(msg string) {
	if m.notifier != nil {
		m.notifier.Notify(msg)
	}
}
