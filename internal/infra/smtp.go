package infra

import (
	"fmt"
	"net/smtp"

	"petmarket/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for transactional mail.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendBienvenida sends the post-registration welcome email.
func (m *Mailer) SendBienvenida(to, nombres string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = "¡Bienvenido a PetMarket!"
	e.Text = []byte(fmt.Sprintf(
		"Hola %s:\n\nTu cuenta en PetMarket fue creada correctamente. "+
			"Ya puedes iniciar sesión y comprar alimento y accesorios para tu mascota.\n\n"+
			"Equipo PetMarket", nombres))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
