// Package views gère les vues de page : chaque chargement de page possède son propre panier.
package views

import (
	"context"
	"sync"
	"time"

	"resto_web/internal/cart"
	"resto_web/internal/render"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrViewNotFound = errors.New("page view not found")

// View associe un panier et son rendu HTML à un chargement de page.
type View struct {
	ID   string
	Cart *cart.Manager
	HTML *render.HTMLSink

	mu       sync.Mutex
	lastSeen time.Time
	holds    int
}

type Registry struct {
	mu    sync.Mutex
	views map[string]*View
	ttl   time.Duration
	now   func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		views: make(map[string]*View),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Open crée une vue neuve avec un panier vide.
func (r *Registry) Open() *View {
	html := render.NewHTMLSink()
	v := &View{
		ID:   uuid.NewString(),
		Cart: cart.NewManager(),
		HTML: html,
	}
	v.Cart.Attach(html)

	r.mu.Lock()
	v.lastSeen = r.now()
	r.views[v.ID] = v
	r.mu.Unlock()
	return v
}

// With exécute fn sous le verrou de la vue : une seule mutation à la fois, et le
// rendu est terminé quand With retourne.
func (r *Registry) With(id string, fn func(v *View)) error {
	r.mu.Lock()
	v, ok := r.views[id]
	if ok {
		v.lastSeen = r.now()
	}
	r.mu.Unlock()
	if !ok {
		return errors.Wrap(ErrViewNotFound, id)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v)
	return nil
}

// Hold garde la vue hors du balayage tant qu'une connexion y est branchée.
// release peut être appelé plusieurs fois.
func (r *Registry) Hold(id string) (release func(), err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.views[id]
	if !ok {
		return nil, errors.Wrap(ErrViewNotFound, id)
	}
	v.holds++
	v.lastSeen = r.now()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			v.holds--
			v.lastSeen = r.now()
			r.mu.Unlock()
		})
	}, nil
}

// Close oublie une vue (navigation ou fermeture de l'onglet).
func (r *Registry) Close(id string) {
	r.mu.Lock()
	delete(r.views, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep supprime les vues inactives depuis plus que le TTL et retourne leur nombre.
// Les vues tenues par Hold restent.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	evicted := 0
	for id, v := range r.views {
		if v.holds == 0 && v.lastSeen.Before(cutoff) {
			delete(r.views, id)
			evicted++
		}
	}
	return evicted
}

// RunJanitor balaie périodiquement les vues expirées jusqu'à l'annulation de ctx.
func (r *Registry) RunJanitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logrus.Infof("🧹 %d vue(s) expirée(s) supprimée(s)", n)
			}
		}
	}
}
