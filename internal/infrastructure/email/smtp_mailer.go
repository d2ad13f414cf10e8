package email

import (
	"fmt"

	"github.com/tecniservice/bitacoras-api/internal/application/ports"
	"github.com/tecniservice/bitacoras-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer entrega el enlace de firma remota por correo.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer construye el adaptador. Devuelve nil si SMTP_HOST está vacío
// (envío deshabilitado; el caso de uso tolera un mailer nil).
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	if cfg.Host == "" {
		return nil
	}
	return &SMTPMailer{cfg: cfg}
}

// EnviarEnlaceFirma envía el enlace compartible al destinatario.
func (m *SMTPMailer) EnviarEnlaceFirma(destinatario, url string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", destinatario)
	msg.SetHeader("Subject", "Firma de conformidad del servicio")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Para firmar la conformidad del servicio técnico ingrese al siguiente enlace:</p>
		<p><a href="%s">%s</a></p>
		<p>El enlace es de un solo uso.</p>`, url, url))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar enlace de firma: %w", err)
	}
	return nil
}
