package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/model"
)

var log = logger.ForService("mail-transport")

// ResendMailer sends mail through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer builds a mailer for the given API key and sender
// address.
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send delivers one message and returns the Resend message ID.
func (m *ResendMailer) Send(ctx context.Context, mail model.Mail) (string, error) {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{mail.To},
		Subject: mail.Subject,
		Text:    mail.Text,
		Html:    mail.HTML,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Errorw("Error sending email", "email", mail.To, "error", err)
		return "", fmt.Errorf("resend send failed: %w", err)
	}

	log.Infow("Email sent via Resend", "email", mail.To, "emailId", sent.Id)
	return sent.Id, nil
}
