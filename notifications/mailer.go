package notifications

import (
	"rezerve.link/configs"

	"gopkg.in/gomail.v2"
)

// Mailer tek bir HTML e-postayı teslim eder. Testlerde sahte uygulama ile
// değiştirilir.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer Mailer arayüzünü gomail ile uygular.
type SMTPMailer struct {
	cfg configs.MailConfig
}

// NewSMTPMailer yeni bir SMTPMailer örneği oluşturur.
func NewSMTPMailer(cfg configs.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send e-postayı SMTP üzerinden gönderir. Her çağrıda yeni bağlantı açılır;
// gönderim hacmi düşük olduğu için bağlantı havuzu tutulmaz.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}

var _ Mailer = (*SMTPMailer)(nil)
