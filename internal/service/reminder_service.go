// internal/service/reminder_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/powercave/mail-service/internal/errors"
	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/mailer"
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/repository"
	"github.com/powercave/mail-service/internal/templates"
)

var reminderLog = logger.ForService("reminder-service")

// DefaultCooldown is the window after a successful reminder during
// which repeat sends to the same member are suppressed.
const DefaultCooldown = 48 * time.Hour

const lastSentLayout = "January 2, 2006 15:04"

// ReminderService runs the plan-renewal reminder dispatch: dedup
// against the email log, sequential throttled sending, per-item
// outcome tracking and the aggregate dispatch report.
type ReminderService struct {
	LogRepo  repository.EmailLogRepositoryInterface
	Mailer   mailer.Mailer
	Throttle Throttle

	// Cooldown defaults to DefaultCooldown when zero.
	Cooldown time.Duration

	// Location controls date formatting in skip reasons and reports.
	// Defaults to time.Local.
	Location *time.Location
}

// SendDisposition reports how a single reminder resolved when no error
// occurred: either it was sent, or it was skipped because a reminder
// for the same member went out within the cooldown window.
type SendDisposition struct {
	Skipped    bool
	LastSentAt *time.Time
}

func (s *ReminderService) cooldown() time.Duration {
	if s.Cooldown <= 0 {
		return DefaultCooldown
	}
	return s.Cooldown
}

func (s *ReminderService) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// hasRecentReminder is the dedup guard: it looks up the most recent
// sent reminder for the member inside the cooldown window. An empty
// publicID short-circuits without touching the store.
func (s *ReminderService) hasRecentReminder(publicID string) (bool, *time.Time, error) {
	if publicID == "" {
		return false, nil, nil
	}

	cutoff := time.Now().Add(-s.cooldown())
	entry, err := s.LogRepo.FindMostRecentSent(publicID, model.MailTypePlanRenewalReminder, cutoff)
	if err != nil {
		return false, nil, fmt.Errorf("query recent reminders: %w", err)
	}
	if entry == nil {
		return false, nil, nil
	}
	return true, entry.SentAt, nil
}

// SendReminder sends one plan-renewal reminder. When the member has a
// public ID the send is recorded in the email log: a pending entry is
// created before the provider call and finalized to sent or failed
// afterwards. Without a public ID the send is treated as a disposable
// test send and nothing is persisted.
//
// A crash between the pending insert and the finalizing update leaves
// an orphaned pending row; no reconciliation job exists for those.
func (s *ReminderService) SendReminder(ctx context.Context, m model.ReminderMail, sentBy string) (SendDisposition, error) {
	if sentBy == "" {
		return SendDisposition{}, appErrors.NewValidation("sentBy is required")
	}

	hasRecent, lastSentAt, err := s.hasRecentReminder(m.PublicID)
	if err != nil {
		return SendDisposition{}, err
	}
	if hasRecent {
		return SendDisposition{Skipped: true, LastSentAt: lastSentAt}, nil
	}

	html, err := templates.RenderReminder(m)
	if err != nil {
		return SendDisposition{}, err
	}

	var logID int
	if m.PublicID != "" {
		publicID := m.PublicID
		entry := &model.EmailLog{
			Recipient:  m.To,
			Subject:    m.Subject,
			MailType:   model.MailTypePlanRenewalReminder,
			PublicID:   &publicID,
			ClientName: m.UserName,
			Status:     model.EmailStatusPending,
			SentBy:     sentBy,
		}
		if err := s.LogRepo.Create(entry); err != nil {
			return SendDisposition{}, fmt.Errorf("create email log: %w", err)
		}
		logID = entry.ID
	}

	if _, sendErr := s.Mailer.Send(ctx, model.Mail{To: m.To, Subject: m.Subject, HTML: html}); sendErr != nil {
		if logID != 0 {
			if err := s.LogRepo.UpdateStatus(logID, model.EmailStatusFailed, sendErr.Error()); err != nil {
				reminderLog.Warnw("Failed to mark email log as failed", "logId", logID, "email", m.To, "error", err)
			} else {
				reminderLog.Warnw("Email log updated to failed status", "logId", logID, "email", m.To, "error", sendErr)
			}
		}
		return SendDisposition{}, sendErr
	}

	if logID != 0 {
		if err := s.LogRepo.UpdateStatus(logID, model.EmailStatusSent, ""); err != nil {
			return SendDisposition{}, fmt.Errorf("mark email log sent: %w", err)
		}
		reminderLog.Infow("Email log updated to sent status", "logId", logID, "email", m.To)
	} else {
		reminderLog.Infow("Test email - skipping database log", "email", m.To)
	}

	return SendDisposition{}, nil
}

// SendBulk dispatches a batch of reminders strictly sequentially,
// pausing one throttle interval between consecutive items. A single
// item's failure never aborts the batch; every input reminder yields
// exactly one outcome, in input order.
func (s *ReminderService) SendBulk(ctx context.Context, reminders []model.ReminderMail, sentBy string) (*model.BulkReminderResult, error) {
	if sentBy == "" {
		return nil, appErrors.NewValidation("sentBy is required")
	}

	batchID := uuid.NewString()
	outcomes := make([]model.ReminderOutcome, 0, len(reminders))

	for i, reminder := range reminders {
		progress := fmt.Sprintf("%d/%d", i+1, len(reminders))

		disp, err := s.SendReminder(ctx, reminder, sentBy)
		switch {
		case err == nil && !disp.Skipped:
			outcomes = append(outcomes, model.ReminderOutcome{
				PublicID: reminder.PublicID,
				Email:    reminder.To,
				Status:   model.OutcomeSuccess,
			})
			reminderLog.Infow("Reminder email sent",
				"batchId", batchID, "email", reminder.To, "publicId", reminder.PublicID, "progress", progress)

		case err == nil && disp.Skipped:
			reason := s.skipReason(disp.LastSentAt)
			outcomes = append(outcomes, model.ReminderOutcome{
				PublicID: reminder.PublicID,
				Email:    reminder.To,
				Status:   model.OutcomeSkipped,
				Reason:   reason,
			})
			reminderLog.Warnw("Reminder email skipped - recent email sent",
				"batchId", batchID, "email", reminder.To, "publicId", reminder.PublicID, "reason", reason, "progress", progress)

		default:
			outcomes = append(outcomes, model.ReminderOutcome{
				PublicID: reminder.PublicID,
				Email:    reminder.To,
				Status:   model.OutcomeFailed,
				Error:    err.Error(),
				Reason:   "Send failed: " + err.Error(),
			})
			reminderLog.Errorw("Error sending reminder email",
				"batchId", batchID, "email", reminder.To, "publicId", reminder.PublicID, "error", err, "progress", progress)
		}

		if i < len(reminders)-1 {
			s.Throttle.Wait(ctx)
		}
	}

	result := &model.BulkReminderResult{Outcomes: outcomes, Failed: []model.FailedRecipient{}}
	for _, o := range outcomes {
		switch o.Status {
		case model.OutcomeSuccess:
			result.Successful++
		case model.OutcomeFailed:
			result.Failed = append(result.Failed, model.FailedRecipient{Email: o.Email, Error: o.Error})
		}
	}
	return result, nil
}

func (s *ReminderService) skipReason(lastSentAt *time.Time) string {
	lastSent := "unknown date"
	if lastSentAt != nil {
		lastSent = lastSentAt.In(s.location()).Format(lastSentLayout)
	}
	hours := int(s.cooldown().Hours())
	return fmt.Sprintf("A reminder email was already sent in the last %d hours (last sent: %s)", hours, lastSent)
}

// SendReport renders the aggregate dispatch report and sends it to
// every recipient, one at a time under the same throttle. Report
// delivery is best effort: per-recipient failures are logged and never
// surface to the caller, so they cannot mask the batch result.
func (s *ReminderService) SendReport(ctx context.Context, outcomes []model.ReminderOutcome, recipients []string, gymName string) {
	if len(recipients) == 0 {
		return
	}

	reportDate := time.Now().In(s.location()).Format("January 2, 2006")
	subject := fmt.Sprintf("[Gym Report] Daily Reminder Status - %s", reportDate)

	html, err := templates.RenderReminderReport(outcomes, reportDate, gymName)
	if err != nil {
		reminderLog.Errorw("Error rendering reminder report", "error", err, "reportDate", reportDate)
		return
	}

	// Give the provider a beat after the batch before the report goes out.
	s.Throttle.Wait(ctx)

	for i, recipient := range recipients {
		if _, err := s.Mailer.Send(ctx, model.Mail{To: recipient, Subject: subject, HTML: html}); err != nil {
			reminderLog.Errorw("Error sending administrative report",
				"email", recipient, "reportDate", reportDate, "error", err)
		} else {
			reminderLog.Infow("Administrative report sent",
				"email", recipient, "reportDate", reportDate, "totalRecords", len(outcomes))
		}

		if i < len(recipients)-1 {
			s.Throttle.Wait(ctx)
		}
	}
}
