// Package render regroupe les surfaces d'affichage du panier.
package render

import (
	"bytes"
	"html/template"
	"sync"

	"resto_web/internal/models"

	"github.com/sirupsen/logrus"
)

var cartTemplate = template.Must(template.New("cart").Parse(`<ul id="cartItems" class="list-group">
{{- range .Lines}}
<li class="list-group-item d-flex justify-content-between align-items-center">
<div><strong>{{.Name}}</strong> <span class="text-muted">x{{.Quantity}}</span></div>
<div><span class="badge bg-warning text-dark rounded-pill me-2">${{.LineTotal}}</span><button class="btn btn-sm btn-outline-danger remove-btn" data-title="{{.Name}}">&times;</button></div>
</li>
{{- end}}
</ul>
<p>Total: $<span id="cartTotal">{{.GrandTotal}}</span></p>
`))

// HTMLSink reconstruit le fragment HTML du panier à chaque rendu.
type HTMLSink struct {
	mu   sync.RWMutex
	html []byte
}

func NewHTMLSink() *HTMLSink {
	return &HTMLSink{}
}

func (s *HTMLSink) Render(snap models.Snapshot) {
	var buf bytes.Buffer
	if err := cartTemplate.Execute(&buf, snap); err != nil {
		logrus.Errorf("❌ Erreur rendu HTML du panier: %v", err)
		return
	}

	s.mu.Lock()
	s.html = buf.Bytes()
	s.mu.Unlock()
}

// HTML retourne le dernier fragment rendu.
func (s *HTMLSink) HTML() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.html...)
}
