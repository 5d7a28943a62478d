package email

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailService delivers quote documents to clients over SMTP.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendQuote emails the rendered quote PDF as an attachment.
func (s *SMTPEmailService) SendQuote(to, clientName, quoteNumber string, pdf []byte) error {
	subject := fmt.Sprintf("Quote %s", quoteNumber)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Dear %s,</p>
			<p>Please find attached quote %s for your review.</p>
			<p>If you have any questions, reply to this email and we will get back to you.</p>
		</body>
		</html>
	`, clientName, quoteNumber)

	plainBody := fmt.Sprintf(`
Dear %s,

Please find attached quote %s for your review.

If you have any questions, reply to this email and we will get back to you.
	`, clientName, quoteNumber)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	m.Attach(
		fmt.Sprintf("quote-%s.pdf", quoteNumber),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
	)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
