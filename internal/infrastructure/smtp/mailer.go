// Package smtp adapta el transporte SMTP detrás del contrato que consume el
// dispatcher. El transporte en sí queda fuera del sistema; aquí solo viven el
// armado del mensaje y el timeout duro por envío.
package smtp

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/pkg/config"
)

// Mailer envía correos vía SMTP con gomail.
type Mailer struct {
	cfg config.SMTPConfig
}

// New construye el adaptador con la configuración SMTP.
func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send envía un correo. gomail no acepta context, así que el envío corre en una
// goroutine y se abandona al vencer el timeout o cancelarse ctx; el dispatcher
// nunca queda colgado de un servidor SMTP lento.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)

	timeout := time.Duration(m.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: enviar a %s: %v", domain.ErrUpstream, to, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: enviar a %s: %v", domain.ErrUpstream, to, ctx.Err())
	case <-time.After(timeout):
		return fmt.Errorf("%w: enviar a %s: timeout tras %s", domain.ErrUpstream, to, timeout)
	}
}
