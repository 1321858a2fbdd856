// internal/service/mail_service.go
package service

import (
	"context"
	"fmt"

	appErrors "github.com/powercave/mail-service/internal/errors"
	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/mailer"
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/templates"
)

var mailLog = logger.ForService("mail-service")

// MailService handles the one-shot transactional mails that need no
// dedup or persisted logging: discounts, credentials and the daily
// admin/sales reports.
type MailService struct {
	Mailer   mailer.Mailer
	Throttle Throttle
}

// SendDiscount renders and sends one promotional discount mail.
func (s *MailService) SendDiscount(ctx context.Context, m model.DiscountMail) error {
	html, err := templates.RenderDiscount(m)
	if err != nil {
		return err
	}
	_, err = s.Mailer.Send(ctx, model.Mail{To: m.To, Subject: m.Subject, HTML: html})
	return err
}

// BulkDiscountResult aggregates a bulk discount run.
type BulkDiscountResult struct {
	Successful int
	Failed     []model.FailedRecipient
}

// SendBulkDiscounts sends promotional mails one at a time under the
// throttle. Per-item failures are collected, not propagated.
func (s *MailService) SendBulkDiscounts(ctx context.Context, mails []model.DiscountMail) *BulkDiscountResult {
	result := &BulkDiscountResult{Failed: []model.FailedRecipient{}}

	for i, m := range mails {
		progress := fmt.Sprintf("%d/%d", i+1, len(mails))
		if err := s.SendDiscount(ctx, m); err != nil {
			mailLog.Errorw("Error sending discount email", "email", m.To, "error", err, "progress", progress)
			result.Failed = append(result.Failed, model.FailedRecipient{Email: m.To, Error: err.Error()})
		} else {
			mailLog.Infow("Discount email sent", "email", m.To, "progress", progress)
			result.Successful++
		}

		if i < len(mails)-1 {
			s.Throttle.Wait(ctx)
		}
	}
	return result
}

// SendPasswordReset sends a password-reset link mail.
func (s *MailService) SendPasswordReset(ctx context.Context, m model.PasswordResetMail) error {
	html, err := templates.RenderPasswordReset(m)
	if err != nil {
		return err
	}
	_, err = s.Mailer.Send(ctx, model.Mail{To: m.To, Subject: m.Subject, HTML: html})
	return err
}

// SendPlatformUserCredentials sends a temporary-credentials mail.
func (s *MailService) SendPlatformUserCredentials(ctx context.Context, m model.PlatformUserCredentialsMail) error {
	html, err := templates.RenderPlatformUserCredentials(m)
	if err != nil {
		return err
	}
	_, err = s.Mailer.Send(ctx, model.Mail{To: m.To, Subject: m.Subject, HTML: html})
	return err
}

// SendDailyAdminReport sends the renewals overview mail.
func (s *MailService) SendDailyAdminReport(ctx context.Context, m model.AdminReportMail, sentBy string) error {
	if sentBy == "" {
		return appErrors.NewValidation("sentBy is required")
	}
	if m.To == "" {
		return appErrors.NewValidation("destination email (to) is required")
	}
	if m.Subject == "" {
		return appErrors.NewValidation("subject is required")
	}

	html, err := templates.RenderAdminReport(m)
	if err != nil {
		return err
	}
	_, err = s.Mailer.Send(ctx, model.Mail{To: m.To, Subject: m.Subject, HTML: html})
	return err
}

// SendDailySalesReport sends the sales summary mail.
func (s *MailService) SendDailySalesReport(ctx context.Context, m model.SalesReportMail, sentBy string) error {
	if sentBy == "" {
		return appErrors.NewValidation("sentBy is required")
	}
	if m.To == "" {
		return appErrors.NewValidation("destination email (to) is required")
	}
	if m.Subject == "" {
		return appErrors.NewValidation("subject is required")
	}

	html, err := templates.RenderSalesReport(m)
	if err != nil {
		return err
	}
	_, err = s.Mailer.Send(ctx, model.Mail{To: m.To, Subject: m.Subject, HTML: html})
	return err
}
