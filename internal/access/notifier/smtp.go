package notifier

import (
	"fmt"
	"net/smtp"
)

// SMTPNotifier delivers verification codes and temporary credentials over
// plain SMTP. Failures are the caller's to log; every send is best-effort
// from the domain's point of view.
type SMTPNotifier struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewSMTPNotifier(host, port, from, username, password string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, from: from, username: username, password: password}
}

func (n *SMTPNotifier) SendVerificationCode(email, code string) error {
	body := fmt.Sprintf("Your verification code is: %s\r\nIt expires in 5 minutes.", code)
	return n.send(email, "Verification code", body)
}

func (n *SMTPNotifier) SendTemporaryPassword(email, password string) error {
	body := fmt.Sprintf("Your temporary password is: %s\r\nUse it to sign in and change your password.", password)
	return n.send(email, "Password reset", body)
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", n.from, to, subject, body))

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	addr := n.host + ":" + n.port
	if err := smtp.SendMail(addr, auth, n.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
