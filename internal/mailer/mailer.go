package mailer

import (
	"context"

	"github.com/powercave/mail-service/internal/model"
)

// Mailer delivers one rendered message. Implementations return the
// provider-assigned message ID on success.
type Mailer interface {
	Send(ctx context.Context, mail model.Mail) (string, error)
}
