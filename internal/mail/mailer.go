package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/studioarcadia/prenota/internal/config"
	"github.com/studioarcadia/prenota/internal/models"
)

// Mailer submits transactional mail over an authenticated relay. Every send
// is best-effort: the returned bool says whether the message went out, and an
// error only reports a transport failure, never an HTTP-level one.
type Mailer struct {
	host    string
	port    int
	user    string
	pass    string
	from    string
	notify  string
	timeout time.Duration
	log     *zap.Logger
}

func NewMailer(cfg *config.Config, log *zap.Logger) *Mailer {
	return &Mailer{
		host:    cfg.SMTPHost,
		port:    cfg.SMTPPort,
		user:    cfg.SMTPUser,
		pass:    cfg.SMTPPass,
		from:    cfg.SMTPFrom,
		notify:  cfg.SMTPNotify,
		timeout: time.Duration(cfg.MailTimeoutSec) * time.Second,
		log:     log,
	}
}

// Configured reports whether relay credentials are present. Without them the
// service still takes bookings, it just cannot notify.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.user != "" && m.pass != "" && m.from != ""
}

// SendConfirmation mails the booker a confirmation with the cancellation
// link, optionally blind-copying the notify address.
func (m *Mailer) SendConfirmation(
	ctx context.Context,
	b *models.Booking,
	cancelURL string,
) (bool, error) {

	if !m.Configured() {
		return false, nil
	}

	note := b.Note
	if note == "" {
		note = "Nessuna nota."
	}

	body := strings.Join([]string{
		"Grazie per la tua richiesta di prenotazione.",
		"",
		fmt.Sprintf("Nome: %s", b.FullName()),
		fmt.Sprintf("Telefono: %s", b.Telefono),
		fmt.Sprintf("Email: %s", b.Email),
		fmt.Sprintf("Data e ora: %s", b.DataOra()),
		fmt.Sprintf("Note: %s", note),
		"",
		"Se devi annullare la prenotazione, usa questo link:",
		cancelURL,
		"",
		"Ti contatteremo a breve per confermare.",
	}, "\n")

	msg := gomail.NewMessage()
	msg.SetHeader("Subject", "Conferma prenotazione")
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", b.Email)
	if m.notify != "" {
		msg.SetHeader("Bcc", m.notify)
	}
	msg.SetBody("text/plain", body)

	return m.send(ctx, msg)
}

// SendThankYou mails the booker after the visit was marked attended.
func (m *Mailer) SendThankYou(
	ctx context.Context,
	b *models.Booking,
) (bool, error) {

	if !m.Configured() {
		return false, nil
	}

	body := strings.Join([]string{
		fmt.Sprintf("Ciao %s,", b.FullName()),
		"",
		fmt.Sprintf("grazie per essere passato da noi il %s.", b.DataOra()),
		"",
		"A presto!",
	}, "\n")

	msg := gomail.NewMessage()
	msg.SetHeader("Subject", "Grazie per la visita")
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", b.Email)
	msg.SetBody("text/plain", body)

	return m.send(ctx, msg)
}

func (m *Mailer) send(ctx context.Context, msg *gomail.Message) (bool, error) {
	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	// Implicit TLS on the secure submission port, STARTTLS otherwise.
	d.SSL = m.port == 465

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			m.log.Warn("mail send failed", zap.Error(err))
			return false, err
		}
		return true, nil
	case <-ctx.Done():
		m.log.Warn("mail send timed out", zap.Error(ctx.Err()))
		return false, ctx.Err()
	}
}
