package contact

import (
	"context"
	"fmt"

	"resto_web/internal/models"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// MailTransport relaie le message de contact par SMTP vers la boîte du restaurant.
type MailTransport struct {
	cfg    MailConfig
	client *mail.Client
}

func NewMailTransport(cfg MailConfig) (*MailTransport, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "client SMTP")
	}
	return &MailTransport{cfg: cfg, client: client}, nil
}

// BuildMessage prépare le mail ; Reply-To pointe vers l'expéditeur du formulaire.
func (t *MailTransport) BuildMessage(msg models.ContactMessage) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(t.cfg.From); err != nil {
		return nil, err
	}
	if err := m.To(t.cfg.To); err != nil {
		return nil, err
	}
	if err := m.ReplyTo(msg.Email); err != nil {
		return nil, err
	}
	m.Subject(fmt.Sprintf("Nouveau message de %s", msg.Name))
	m.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("Nom: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message))
	return m, nil
}

func (t *MailTransport) Send(ctx context.Context, msg models.ContactMessage) error {
	m, err := t.BuildMessage(msg)
	if err != nil {
		return errors.Wrap(err, "construction du mail")
	}
	return errors.Wrap(t.client.DialAndSendWithContext(ctx, m), "envoi SMTP")
}
