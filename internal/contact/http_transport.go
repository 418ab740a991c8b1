package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"resto_web/internal/models"

	"github.com/pkg/errors"
)

const DefaultEndpoint = "https://jsonplaceholder.typicode.com/posts"

// HTTPTransport poste le message en JSON vers un endpoint externe fixe.
type HTTPTransport struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPTransport(endpoint string, timeout time.Duration) *HTTPTransport {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HTTPTransport{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTransport) Send(ctx context.Context, msg models.ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encodage du message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "création de la requête")
	}
	req.Header.Set("Content-type", "application/json; charset=UTF-8")

	res, err := t.Client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "POST %s", t.Endpoint)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errors.Errorf("POST %s: statut %d", t.Endpoint, res.StatusCode)
	}
	return nil
}
