// Package dispatch implementa el despachador de correos programados: un cron
// que cada minuto busca los mails cuya receiving_time coincide exactamente con
// el minuto actual y los envía uno a uno.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
	"github.com/tu-usuario/resto-dash/pkg/logger"
)

// Mailer contrato mínimo de transporte; lo implementa infrastructure/smtp.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Clock abstrae el reloj para poder fijar "ahora" en los tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reloj real.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Dispatcher orquesta el ciclo por minuto. Start es idempotente: una segunda
// llamada detiene el cron anterior antes de arrancar el nuevo.
type Dispatcher struct {
	mails  repository.MailRepository
	mailer Mailer
	clock  Clock
	log    *logger.Logger
	cron   *cron.Cron
}

// New construye el dispatcher. clock nil usa el reloj del sistema.
func New(mails repository.MailRepository, mailer Mailer, clock Clock, log *logger.Logger) *Dispatcher {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Dispatcher{mails: mails, mailer: mailer, clock: clock, log: log}
}

// Start arranca el ciclo: un tick en el segundo 0 de cada minuto.
func (d *Dispatcher) Start() {
	if d.cron != nil {
		d.cron.Stop()
	}
	d.cron = cron.New(cron.WithSeconds())
	// segundo 0 de cada minuto
	_, err := d.cron.AddFunc("0 * * * * *", func() {
		d.Tick(context.Background())
	})
	if err != nil {
		d.log.Error().Err(err).Msg("No se pudo registrar el cron del dispatcher")
		return
	}
	d.cron.Start()
	d.log.Info().Msg("Dispatcher de correos iniciado")
}

// Stop detiene el cron y espera a que terminen los ticks en curso.
func (d *Dispatcher) Stop() {
	if d.cron == nil {
		return
	}
	ctx := d.cron.Stop()
	<-ctx.Done()
	d.cron = nil
	d.log.Info().Msg("Dispatcher de correos detenido")
}

// Tick ejecuta un ciclo de despacho: trunca "ahora" al minuto, busca los mails
// con esa hora exacta y envía uno por uno. Un fallo de envío se registra y no
// corta el lote. Exportado para poder dispararlo directo en tests.
func (d *Dispatcher) Tick(ctx context.Context) {
	now := d.clock.Now()
	hhmmss := now.Format("15:04") + ":00"
	batch := uuid.New().String()

	mails, err := d.mails.FindByReceivingTime(ctx, hhmmss)
	if err != nil {
		d.log.Error().Err(err).Str("batch_id", batch).Str("hora", hhmmss).
			Msg("Error consultando correos programados")
		return
	}
	if len(mails) == 0 {
		return
	}

	d.log.Info().Str("batch_id", batch).Str("hora", hhmmss).Int("total", len(mails)).
		Msg("Despachando correos programados")

	sent := 0
	for _, m := range mails {
		if err := d.mailer.Send(ctx, m.ReceiverEmail, subjectFor(m), bodyFor(m, now)); err != nil {
			d.log.Error().Err(err).Str("batch_id", batch).Int64("mail_id", m.ID).
				Str("destinatario", m.ReceiverEmail).Msg("Error enviando correo programado")
			continue
		}
		sent++
	}

	d.log.Info().Str("batch_id", batch).Int("enviados", sent).Int("fallidos", len(mails)-sent).
		Msg("Lote de correos despachado")
}

func subjectFor(m *entity.Mail) string {
	return "Reporte diario del dashboard"
}

func bodyFor(m *entity.Mail, now time.Time) string {
	return fmt.Sprintf(
		"<p>Hola %s,</p><p>Este es tu recordatorio programado del dashboard para el %s.</p>",
		m.ReceiverName, now.Format("2006-01-02"),
	)
}
