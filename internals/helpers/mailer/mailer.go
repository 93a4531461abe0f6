package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"presensiku_backend/internals/configs"
)

// Mailer mengirim email transaksional via Sendgrid.
type Mailer interface {
	SendForgotPasswordOTP(email, name, token string) error
}

type sendgridMailer struct {
	client *sendgrid.Client
	sender string
}

func New() Mailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(configs.SendgridAPIKey),
		sender: configs.MailSender,
	}
}

func (m *sendgridMailer) SendForgotPasswordOTP(email, name, token string) error {
	from := mail.NewEmail("Presensiku", m.sender)
	to := mail.NewEmail(name, email)
	subject := "[PRESENCE] Your Token Forgot Password"

	html := fmt.Sprintf(`
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h1>Konfirmasi OTP Lupa Password</h1>
    <p>Halo %s,</p>
    <p>Silakan gunakan kode OTP ini untuk mengonfirmasi perubahan password Anda:</p>
    <p style="color: red;">Kode OTP ini hanya berlaku selama 2 menit, mohon segera verifikasi pada website!</p>
    <p style="font-size: 36px; font-weight: bold; color: #007bff;">%s</p>
    <p>Harap jangan berikan kode ini kepada siapapun.</p>
  </body>
</html>`, name, token)

	msg := mail.NewSingleEmail(from, subject, to, "Kode OTP Anda: "+token, html)
	resp, err := m.client.Send(msg)
	if err != nil {
		return fmt.Errorf("gagal kirim email OTP: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid menolak email OTP: status %d", resp.StatusCode)
	}

	log.Printf("[INFO] Email OTP terkirim ke %s", email)
	return nil
}
